package propagate

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/volume"
)

// Sentinel errors for engine construction and Update.
var (
	// ErrNilRule is returned by New when no decision rule is given.
	ErrNilRule = errors.New("propagate: decision rule is nil")
	// ErrNilLabels is returned by Update when the label buffer is missing.
	ErrNilLabels = errors.New("propagate: label buffer is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("propagate: invalid option supplied")
)

// State is the position of the driver in its state machine.
type State int

const (
	// Uninitialized is the state before and at the start of Update.
	Uninitialized State = iota
	// Seeding scans the label buffer for the initial wavefront.
	Seeding
	// Evaluating runs the decision rule over the current wavefront.
	Evaluating
	// Committing writes the pending values.
	Committing
	// Expanding queues the neighbours of committed pixels.
	Expanding
	// Converged means no pixel changed in the last pass.
	Converged
	// MaxIterationsReached means the iteration cap stopped a run that still had work.
	MaxIterationsReached
	// Aborted means the caller's context was cancelled between iterations.
	Aborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Seeding:
		return "seeding"
	case Evaluating:
		return "evaluating"
	case Committing:
		return "committing"
	case Expanding:
		return "expanding"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations-reached"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether s ends an Update.
func (s State) Terminal() bool {
	return s == Converged || s == MaxIterationsReached || s == Aborted
}

// IterationStats describes one committing iteration.
type IterationStats struct {
	Iteration    int // 1-based
	Evaluated    int // wavefront size
	Changed      int // pixels committed
	TotalChanged int // pixels committed since Update started
	NextFrontier int // size of the next wavefront
}

// Result summarises an Update.
type Result struct {
	State                State
	Iterations           int
	TotalChanged         int
	ChangedLastIteration int
	Seeds                int // size of the initial wavefront
	Elapsed              time.Duration
}

// Observer receives engine events; see package metrics for a Prometheus one.
// Implementations must be safe for use by several engines at once.
type Observer interface {
	ObserveIteration(rule string, s IterationStats)
	ObserveRun(rule string, r Result)
}

// Option configures an Engine. Invalid values are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the engine configuration.
type Options struct {
	// MaxIterations caps the committing iterations; 0 means unlimited.
	MaxIterations int
	// Radius is the per-axis neighbourhood radius; nil means 1 on every axis.
	Radius grid.Radius
	// Conn selects full or face connectivity.
	Conn grid.Connectivity
	// Background is the unlabeled sentinel.
	Background volume.Label
	// Workers is the number of evaluate-phase goroutines.
	Workers int
	// Logger receives Debug records per iteration and Info per run.
	Logger logrus.FieldLogger
	// Observer, if set, receives per-iteration and per-run events.
	Observer Observer
	// OnIteration is called after every committing iteration.
	OnIteration func(IterationStats)

	err error
}

// DefaultOptions returns unlimited iterations, radius 1, full connectivity,
// background 0, one worker, a discarding logger and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		Conn:          grid.ConnFull,
		Background:    0,
		Workers:       1,
		Logger:        discardLogger(),
		OnIteration:   func(IterationStats) {},
	}
}

// WithMaxIterations caps the number of committing iterations.
//
//	n > 0: at most n iterations
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithRadius sets the neighbourhood radius. A single value applies to every
// axis; otherwise one value per axis is expected.
func WithRadius(r ...int) Option {
	return func(o *Options) {
		if len(r) == 0 {
			o.err = fmt.Errorf("%w: empty radius", ErrOptionViolation)
			return
		}
		for _, v := range r {
			if v < 0 {
				o.err = fmt.Errorf("%w: negative radius %v", ErrOptionViolation, r)
				return
			}
		}
		o.Radius = append(grid.Radius(nil), r...)
	}
}

// WithConnectivity selects full or face connectivity.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c != grid.ConnFull && c != grid.ConnFace {
			o.err = fmt.Errorf("%w: unknown connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithBackground sets the unlabeled sentinel value.
func WithBackground(l volume.Label) Option {
	return func(o *Options) { o.Background = l }
}

// WithWorkers sets the number of evaluate-phase goroutines; 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a metrics observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// WithOnIteration registers a hook called after every committing iteration.
func WithOnIteration(fn func(IterationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
