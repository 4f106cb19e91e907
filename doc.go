// Package lesionfront is an in-memory front-propagation labeling engine for
// N-dimensional images: seeded regions grow one wavefront at a time until
// they meet, and holes in a mask close by majority vote.
//
// What is in the box?
//
//	A pure-Go engine plus the adapters around it:
//		• Grid addressing: flat raster buffers, linear neighbour offsets
//		• Frontier: seed mask and double-buffered wavefront queues
//		• Decision rules: region competition, majority-vote hole filling
//		• Driver: evaluate / commit / expand with simultaneous updates
//		• Components: connected regions for counting and sizing lesions
//		• Raster: image.Image adapters, smoothing and label overlays
//		• Metrics: a Prometheus observer for engine runs
//
// Why lesionfront?
//
//   - Order independent: every wavefront is evaluated before any pixel is written
//   - Any rank: 2-D slices, 3-D volumes and beyond with the same code
//   - Pluggable: implement rule.Rule to grow regions by your own criterion
//   - Observable: logrus fields per iteration, hooks and Prometheus metrics
//
// Packages:
//
//	grid/       — shapes, strides, offset tables and neighbour cursors
//	volume/     — Image and Labels buffers
//	frontier/   — seed mask and wavefront queues
//	rule/       — Rule interface, RegionCompetition, MajorityVote
//	propagate/  — the Engine and its options
//	components/ — connected components of a label
//	phantom/    — synthetic volumes with known answers
//	raster/     — image.Image conversions, Gaussian smoothing, overlays
//	metrics/    — Prometheus Collector
//	config/     — YAML configuration for the command
//	cmd/lesionfront — command-line demo
//
// Quick example (1-D, two seeds, one step edge):
//
//	intensities  10 12 11 13 90 88 91 89
//	labels in     1  0  0  0  0  0  0  2
//	labels out    1  1  1  1  2  2  2  2
//
//	go get github.com/katalvlaran/lesionfront
package lesionfront
