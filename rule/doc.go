// Package rule defines the decision rules evaluated for every pixel of a
// propagation wavefront.
//
// A Rule is bound to the label buffer (and, when it needs one, the intensity
// image) by Prepare, before the first iteration. Decide then inspects one
// candidate background pixel and its in-bounds neighbours and reports whether
// the pixel should take a value this iteration, and which one. Decide reads
// the label buffer as it was committed at the end of the previous iteration;
// the driver never writes labels while Decide may run, so a Rule only has to
// be read-only to be safe for concurrent evaluation.
//
// Two rules are provided:
//
//   - RegionCompetition: among the already-labelled neighbours, the label with
//     the best (lowest) score wins. The default score is the distance between
//     the candidate's intensity and the label's seed intensity, so the region
//     whose seeds look most like the candidate claims it. Ties resolve to the
//     lowest label id, independent of scan order.
//   - MajorityVote: a background pixel becomes foreground once at least
//     ceil(K/2)+MajorityThreshold of its K neighbours are foreground. The
//     birth threshold is computed once in Prepare.
package rule
