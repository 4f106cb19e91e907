// Package frontier holds the double-buffered wavefront of a front-propagation
// run and the seed mask that keeps it free of duplicates.
//
// What:
//
//   - Mask: O(1) "is this pixel queued" membership over a flat buffer.
//   - Queues: a "current" and a "next" wavefront of linear pixel indices.
//     PushNext appends only unmarked pixels and marks them; Drain pops the
//     whole current wavefront and unmarks it; SwapAndClear promotes "next"
//     to "current" and is the only point where queue identities change.
//
// Invariant:
//
//	A pixel is marked if and only if it is present in exactly one of the two
//	queues. Consistent checks this in O(V) and is meant for tests.
//
// Both queues are plain slices whose backing arrays are reused across swaps,
// so a run allocates O(peak wavefront) once and pushes and pops in O(1).
// Insertion order carries no meaning for the decision rules.
package frontier
