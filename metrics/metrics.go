// Package metrics exports propagation engine activity as Prometheus metrics.
//
// A Collector implements propagate.Observer; pass it to an engine with
// propagate.WithObserver. One Collector may serve many engines at once, the
// rule name is carried as a label.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lesionfront/propagate"
)

const namespace = "lesionfront"

// Collector records per-iteration and per-run engine metrics.
type Collector struct {
	// Iterations counts committing iterations by rule.
	Iterations *prometheus.CounterVec
	// PixelsChanged counts committed pixels by rule.
	PixelsChanged *prometheus.CounterVec
	// Runs counts finished Updates by rule and terminal state.
	Runs *prometheus.CounterVec
	// Frontier holds the size of the latest next wavefront by rule.
	Frontier *prometheus.GaugeVec
	// WaveSize observes the number of pixels evaluated per iteration.
	WaveSize *prometheus.HistogramVec
	// RunDuration observes the wall time of an Update in seconds.
	RunDuration *prometheus.HistogramVec
	// RunIterations observes the iterations per Update.
	RunIterations *prometheus.HistogramVec
}

// New registers the engine metrics with reg. A nil reg uses the default
// Prometheus registerer. Registering twice with the same registerer panics,
// as with promauto.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collector{
		Iterations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Committing iterations by decision rule",
		}, []string{"rule"}),
		PixelsChanged: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pixels_changed_total",
			Help:      "Pixels committed by decision rule",
		}, []string{"rule"}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished updates by decision rule and terminal state",
		}, []string{"rule", "state"}),
		Frontier: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_pixels",
			Help:      "Size of the next wavefront after the latest iteration",
		}, []string{"rule"}),
		WaveSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wave_pixels",
			Help:      "Pixels evaluated per iteration",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}, []string{"rule"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of an update in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 18), // 0.1ms to ~13s
		}, []string{"rule"}),
		RunIterations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_iterations",
			Help:      "Committing iterations per update",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		}, []string{"rule"}),
	}
}

// ObserveIteration implements propagate.Observer.
func (c *Collector) ObserveIteration(rule string, s propagate.IterationStats) {
	c.Iterations.WithLabelValues(rule).Inc()
	c.PixelsChanged.WithLabelValues(rule).Add(float64(s.Changed))
	c.Frontier.WithLabelValues(rule).Set(float64(s.NextFrontier))
	c.WaveSize.WithLabelValues(rule).Observe(float64(s.Evaluated))
}

// ObserveRun implements propagate.Observer.
func (c *Collector) ObserveRun(rule string, r propagate.Result) {
	c.Runs.WithLabelValues(rule, r.State.String()).Inc()
	c.RunDuration.WithLabelValues(rule).Observe(r.Elapsed.Seconds())
	c.RunIterations.WithLabelValues(rule).Observe(float64(r.Iterations))
}

var _ propagate.Observer = (*Collector)(nil)
