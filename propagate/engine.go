package propagate

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lesionfront/frontier"
	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/rule"
	"github.com/katalvlaran/lesionfront/volume"
)

// minParallelFrontier is the smallest wavefront worth splitting across workers.
var minParallelFrontier = 2048

// pending is a value computed during Evaluating, applied during Committing.
type pending struct {
	index int
	value volume.Label
}

// Engine runs front propagation with one decision rule. The offset table and
// queue storage are kept between Updates and rebuilt only when the buffer
// shape changes.
type Engine struct {
	rule rule.Rule
	opts Options
	log  logrus.FieldLogger

	nb      *grid.Neighborhood
	cursors []*grid.Cursor
	nbrBufs [][]int
	queues  *frontier.Queues
	parts   [][]pending
	pending []pending

	state       State
	iteration   int
	changedLast int
	total       int
}

// New returns an Engine for r. Returns ErrNilRule or ErrOptionViolation.
func New(r rule.Rule, opts ...Option) (*Engine, error) {
	if r == nil {
		return nil, ErrNilRule
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	return &Engine{
		rule:   r,
		opts:   o,
		log:    o.Logger.WithField("rule", r.Name()),
		queues: frontier.NewQueues(0),
	}, nil
}

// Iteration returns the number of committing iterations of the last Update.
func (e *Engine) Iteration() int { return e.iteration }

// TotalChanged returns the number of pixels committed by the last Update.
func (e *Engine) TotalChanged() int { return e.total }

// ChangedLastIteration returns the pixels committed by the latest iteration.
func (e *Engine) ChangedLastIteration() int { return e.changedLast }

// State returns the current or terminal state.
func (e *Engine) State() State { return e.state }

// Neighborhood returns the offset table of the last Update, or nil.
func (e *Engine) Neighborhood() *grid.Neighborhood { return e.nb }

// Queues exposes the wavefront storage, mainly for invariant checks in hooks.
func (e *Engine) Queues() *frontier.Queues { return e.queues }

// Rule returns the decision rule.
func (e *Engine) Rule() rule.Rule { return e.rule }

// Update grows labels in place until convergence or the iteration cap.
// img is required only by rules that score intensities.
// The context is checked between iterations, never inside one.
func (e *Engine) Update(ctx context.Context, labels *volume.Labels, img *volume.Image) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	e.state = Uninitialized
	e.iteration, e.changedLast, e.total = 0, 0, 0

	if err := e.prepare(labels, img); err != nil {
		return e.result(0, start), err
	}

	e.state = Seeding
	seeds := e.seed(labels)
	e.log.WithFields(logrus.Fields{
		"shape": labels.Shape,
		"k":     e.nb.Size(),
		"seeds": seeds,
	}).Debug("wavefront seeded")

	bg := e.opts.Background
	for e.queues.Len() > 0 {
		if err := ctx.Err(); err != nil {
			e.state = Aborted
			res := e.result(seeds, start)
			e.finish(res)
			return res, err
		}
		if e.opts.MaxIterations > 0 && e.iteration >= e.opts.MaxIterations {
			e.state = MaxIterationsReached
			break
		}

		e.state = Evaluating
		wave := e.queues.Drain()
		values := e.evaluate(wave)
		if len(values) == 0 {
			e.changedLast = 0
			break
		}

		e.state = Committing
		for _, p := range values {
			labels.Pix[p.index] = p.value
		}
		e.iteration++
		e.changedLast = len(values)
		e.total += len(values)

		e.state = Expanding
		cur, buf := e.cursors[0], e.nbrBufs[0]
		for _, p := range values {
			buf = cur.Neighbors(p.index, buf[:0])
			for _, n := range buf {
				if labels.Pix[n] == bg {
					e.queues.PushNext(n)
				}
			}
		}
		e.nbrBufs[0] = buf

		stats := IterationStats{
			Iteration:    e.iteration,
			Evaluated:    len(wave),
			Changed:      e.changedLast,
			TotalChanged: e.total,
			NextFrontier: e.queues.NextLen(),
		}
		e.queues.SwapAndClear()
		e.log.WithFields(logrus.Fields{
			"iteration": stats.Iteration,
			"evaluated": stats.Evaluated,
			"changed":   stats.Changed,
			"frontier":  stats.NextFrontier,
		}).Debug("iteration committed")
		e.opts.OnIteration(stats)
		if e.opts.Observer != nil {
			e.opts.Observer.ObserveIteration(e.rule.Name(), stats)
		}
	}
	if e.state != MaxIterationsReached {
		e.state = Converged
	}

	res := e.result(seeds, start)
	e.finish(res)
	return res, nil
}

// prepare validates the inputs, rebuilds the offset table if the shape or
// radius changed, and binds the rule. Nothing is written to labels.
func (e *Engine) prepare(labels *volume.Labels, img *volume.Image) error {
	if labels == nil {
		return ErrNilLabels
	}
	if err := labels.Shape.Validate(); err != nil {
		return fmt.Errorf("propagate: labels: %w", err)
	}
	if len(labels.Pix) != labels.Shape.Len() {
		return fmt.Errorf("propagate: labels: %w", volume.ErrPixelCount)
	}
	if img != nil {
		if err := volume.SameShape(labels.Shape, img.Shape); err != nil {
			return fmt.Errorf("propagate: %w", err)
		}
		if len(img.Pix) != img.Shape.Len() {
			return fmt.Errorf("propagate: image: %w", volume.ErrPixelCount)
		}
	}

	radius := e.opts.Radius
	switch {
	case radius == nil:
		radius = grid.UniformRadius(labels.Shape.Rank(), 1)
	case len(radius) == 1 && labels.Shape.Rank() > 1:
		radius = grid.UniformRadius(labels.Shape.Rank(), radius[0])
	}
	if !e.tableFits(labels.Shape, radius) {
		nb, err := grid.BuildOffsetTable(labels.Shape, radius, e.opts.Conn)
		if err != nil {
			return fmt.Errorf("propagate: offset table: %w", err)
		}
		e.nb = nb
		e.cursors = make([]*grid.Cursor, e.opts.Workers)
		e.nbrBufs = make([][]int, e.opts.Workers)
		e.parts = make([][]pending, e.opts.Workers)
		for w := range e.cursors {
			e.cursors[w] = nb.NewCursor()
			e.nbrBufs[w] = make([]int, 0, nb.Size())
		}
	}

	env := rule.Env{
		Labels:       labels,
		Image:        img,
		Neighborhood: e.nb,
		Background:   e.opts.Background,
	}
	if err := e.rule.Prepare(env); err != nil {
		return fmt.Errorf("propagate: %s: %w", e.rule.Name(), err)
	}
	return nil
}

// tableFits reports whether the cached offset table serves shape and radius.
func (e *Engine) tableFits(shape grid.Shape, radius grid.Radius) bool {
	if !e.nb.Matches(shape) {
		return false
	}
	have := e.nb.Radius()
	if len(have) != len(radius) {
		return false
	}
	for d := range have {
		if have[d] != radius[d] {
			return false
		}
	}
	return true
}

// seed queues every background pixel that has a non-background neighbour and
// returns the size of the initial wavefront.
func (e *Engine) seed(labels *volume.Labels) int {
	bg := e.opts.Background
	e.queues.Reset(len(labels.Pix))
	cur, buf := e.cursors[0], e.nbrBufs[0]
	for i, l := range labels.Pix {
		if l != bg {
			continue
		}
		buf = cur.Neighbors(i, buf[:0])
		for _, n := range buf {
			if labels.Pix[n] != bg {
				e.queues.PushCurrent(i)
				break
			}
		}
	}
	e.nbrBufs[0] = buf
	return e.queues.Len()
}

// evaluate runs the rule over wave without writing labels. Results keep the
// wavefront order whether or not the work is split across workers.
func (e *Engine) evaluate(wave []int) []pending {
	workers := e.opts.Workers
	if workers <= 1 || len(wave) < minParallelFrontier {
		e.pending = e.evaluateRange(0, wave, e.pending[:0])
		return e.pending
	}

	chunk := (len(wave) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(wave) {
			e.parts[w] = e.parts[w][:0]
			continue
		}
		hi := min(lo+chunk, len(wave))
		g.Go(func() error {
			e.parts[w] = e.evaluateRange(w, wave[lo:hi], e.parts[w][:0])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	e.pending = e.pending[:0]
	for _, part := range e.parts {
		e.pending = append(e.pending, part...)
	}
	return e.pending
}

// evaluateRange decides every pixel of wave using worker w's scratch space.
func (e *Engine) evaluateRange(w int, wave []int, dst []pending) []pending {
	bg := e.opts.Background
	cur, buf := e.cursors[w], e.nbrBufs[w]
	for _, idx := range wave {
		buf = cur.Neighbors(idx, buf[:0])
		v, ok := e.rule.Decide(rule.Candidate{Index: idx, Neighbors: buf})
		if ok && v != bg {
			dst = append(dst, pending{index: idx, value: v})
		}
	}
	e.nbrBufs[w] = buf
	return dst
}

func (e *Engine) result(seeds int, start time.Time) Result {
	return Result{
		State:                e.state,
		Iterations:           e.iteration,
		TotalChanged:         e.total,
		ChangedLastIteration: e.changedLast,
		Seeds:                seeds,
		Elapsed:              time.Since(start),
	}
}

func (e *Engine) finish(res Result) {
	e.log.WithFields(logrus.Fields{
		"state":         res.State.String(),
		"iterations":    res.Iterations,
		"total_changed": res.TotalChanged,
		"seeds":         res.Seeds,
		"elapsed":       res.Elapsed,
	}).Info("propagation finished")
	if e.opts.Observer != nil {
		e.opts.Observer.ObserveRun(e.rule.Name(), res)
	}
}
