package rule

import (
	"errors"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/volume"
)

// Sentinel errors returned by Prepare.
var (
	// ErrNilLabels indicates a missing label buffer.
	ErrNilLabels = errors.New("rule: label buffer is nil")
	// ErrMissingImage indicates a rule that scores intensities was given no image.
	ErrMissingImage = errors.New("rule: intensity image is required")
	// ErrNilNeighborhood indicates a missing offset table.
	ErrNilNeighborhood = errors.New("rule: neighbourhood is nil")
	// ErrForegroundIsBackground indicates a foreground value equal to the background sentinel.
	ErrForegroundIsBackground = errors.New("rule: foreground value equals background value")
	// ErrNegativeThreshold indicates a negative majority threshold.
	ErrNegativeThreshold = errors.New("rule: majority threshold must be non-negative")
	// ErrThresholdUnreachable indicates a birth threshold larger than the neighbourhood.
	ErrThresholdUnreachable = errors.New("rule: majority threshold exceeds neighbourhood size")
)

// Env is what a Rule sees of the run it is bound to.
type Env struct {
	Labels       *volume.Labels
	Image        *volume.Image
	Neighborhood *grid.Neighborhood
	Background   volume.Label
}

// Candidate is one queued background pixel and its in-bounds neighbours.
type Candidate struct {
	Index     int
	Neighbors []int
}

// Rule decides whether a wavefront pixel transitions and to what value.
type Rule interface {
	// Name identifies the rule in logs and metrics.
	Name() string
	// Prepare validates env and binds the rule to it. It is called once per
	// run, before any label is written.
	Prepare(env Env) error
	// Decide returns the value the candidate takes and true, or false when the
	// candidate stays background this iteration. It must not write to the
	// buffers and must be safe for concurrent use.
	Decide(c Candidate) (volume.Label, bool)
}

func checkEnv(env Env) error {
	if env.Labels == nil {
		return ErrNilLabels
	}
	if env.Neighborhood == nil {
		return ErrNilNeighborhood
	}
	return nil
}
