// Package propagate drives the iterative front-propagation labeling engine
// shared by region competition and majority-vote hole filling.
//
// What
//
//   - Seeding: every background pixel with a non-background neighbour joins the
//     initial wavefront.
//   - Evaluating: the Decision Rule runs for every wavefront pixel against the
//     labels committed by the previous iteration. Results go to a pending array;
//     the label buffer is not touched.
//   - Committing: the pending values are written in one pass and the counters
//     advance.
//   - Expanding: background neighbours of the pixels just committed join the
//     next wavefront unless already queued.
//   - The wavefronts swap and the loop repeats until nothing changes, the
//     wavefront empties, or MaxIterations is reached.
//
// Why
//
//	Writing only after the whole wavefront has been evaluated makes growth
//	simultaneous: the result does not depend on the order pixels are visited,
//	and two regions advancing towards each other meet halfway.
//
// Counters
//
//	Iteration counts iterations that committed at least one pixel. The final
//	pass that commits nothing is the convergence check and is not counted, so
//	running Update again on a converged buffer reports zero iterations and zero
//	changed pixels. TotalChanged always equals the number of pixels that went
//	from background to a label.
//
// Concurrency
//
//	WithWorkers(n) splits the evaluate phase across n goroutines with an
//	errgroup. Each worker fills its own pending array; the arrays are joined in
//	wavefront order, so the output is identical to a serial run. Commit and
//	expand stay single-threaded. An Engine must not run two Updates at once,
//	and the caller must not touch the buffers while Update runs.
//
// Options
//
//   - WithMaxIterations(n): stop after n committing iterations (0 = unlimited).
//   - WithRadius(r...): neighbourhood radius per axis (default 1 on every axis).
//   - WithConnectivity(c): grid.ConnFull (default) or grid.ConnFace.
//   - WithBackground(l): the unlabeled sentinel (default 0).
//   - WithWorkers(n): evaluate-phase goroutines (default 1, 0 = GOMAXPROCS).
//   - WithLogger(l): logrus logger (default discards).
//   - WithObserver(o): metrics sink, see package metrics.
//   - WithOnIteration(fn): hook after every committing iteration.
//
// Errors
//
//   - ErrNilRule, ErrNilLabels, ErrOptionViolation.
//   - grid and rule validation errors, wrapped.
//   - The caller's context error when it is cancelled between iterations; the
//     labels then hold every iteration committed so far and nothing partial.
//
// Configuration errors are reported before any label is written.
package propagate
