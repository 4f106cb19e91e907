package rule

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lesionfront/volume"
)

// Scoring is the information a ScoreFunc sees for one labelled neighbour of a
// candidate pixel.
type Scoring struct {
	Label     volume.Label
	Candidate float64 // intensity of the candidate pixel
	Neighbor  float64 // intensity of the labelled neighbour
	Seed      float64 // seed intensity of Label
}

// ScoreFunc rates how well a label fits a candidate. Lower is better; NaN
// scores are ignored.
type ScoreFunc func(s Scoring) float64

// ClosestSeedIntensity scores a label by the distance between the candidate's
// intensity and the label's seed intensity.
func ClosestSeedIntensity(s Scoring) float64 { return math.Abs(s.Candidate - s.Seed) }

// ClosestNeighborIntensity scores a label by the distance between the
// candidate's intensity and the labelled neighbour's own intensity.
func ClosestNeighborIntensity(s Scoring) float64 { return math.Abs(s.Candidate - s.Neighbor) }

// CompetitionOption configures a RegionCompetition.
type CompetitionOption func(*RegionCompetition)

// WithScorer replaces the default ClosestSeedIntensity scoring.
func WithScorer(fn ScoreFunc) CompetitionOption {
	return func(r *RegionCompetition) {
		if fn != nil {
			r.score = fn
		}
	}
}

// WithSeedIntensities fixes the seed intensity of the given labels instead of
// measuring it from the initial label buffer.
func WithSeedIntensities(seeds map[volume.Label]float64) CompetitionOption {
	return func(r *RegionCompetition) {
		for l, v := range seeds {
			r.override[l] = v
		}
	}
}

// RegionCompetition lets labelled regions compete for the pixels between them.
type RegionCompetition struct {
	score    ScoreFunc
	override map[volume.Label]float64

	labels     []volume.Label
	intensity  []float64
	background volume.Label
	seeds      map[volume.Label]float64
}

// NewRegionCompetition returns a competition rule, by default scoring with
// ClosestSeedIntensity.
func NewRegionCompetition(opts ...CompetitionOption) *RegionCompetition {
	r := &RegionCompetition{
		score:    ClosestSeedIntensity,
		override: make(map[volume.Label]float64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements Rule.
func (r *RegionCompetition) Name() string { return "region-competition" }

// SeedIntensities returns the seed intensity of every label found by Prepare.
func (r *RegionCompetition) SeedIntensities() map[volume.Label]float64 {
	out := make(map[volume.Label]float64, len(r.seeds))
	for l, v := range r.seeds {
		out[l] = v
	}
	return out
}

// Prepare implements Rule. The seed intensity of a label is the mean image
// intensity over the pixels carrying it in the initial label buffer, unless
// fixed with WithSeedIntensities.
func (r *RegionCompetition) Prepare(env Env) error {
	if err := checkEnv(env); err != nil {
		return err
	}
	if env.Image == nil {
		return ErrMissingImage
	}
	if err := volume.SameShape(env.Labels.Shape, env.Image.Shape); err != nil {
		return err
	}

	samples := make(map[volume.Label][]float64)
	for i, l := range env.Labels.Pix {
		if l == env.Background {
			continue
		}
		if _, fixed := r.override[l]; fixed {
			continue
		}
		samples[l] = append(samples[l], env.Image.Pix[i])
	}
	seeds := make(map[volume.Label]float64, len(samples)+len(r.override))
	for l, xs := range samples {
		seeds[l] = stat.Mean(xs, nil)
	}
	for l, v := range r.override {
		seeds[l] = v
	}

	r.labels = env.Labels.Pix
	r.intensity = env.Image.Pix
	r.background = env.Background
	r.seeds = seeds
	return nil
}

// Decide implements Rule.
func (r *RegionCompetition) Decide(c Candidate) (volume.Label, bool) {
	var (
		best      volume.Label
		bestScore float64
		found     bool
	)
	cand := r.intensity[c.Index]
	for _, n := range c.Neighbors {
		l := r.labels[n]
		if l == r.background {
			continue
		}
		s := r.score(Scoring{
			Label:     l,
			Candidate: cand,
			Neighbor:  r.intensity[n],
			Seed:      r.seeds[l],
		})
		if math.IsNaN(s) {
			continue
		}
		if !found || s < bestScore || (s == bestScore && l < best) {
			best, bestScore, found = l, s, true
		}
	}
	return best, found
}
