// Package phantom builds synthetic intensity and label volumes with known
// answers, for tests, benchmarks and the command-line demo.
package phantom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/volume"
)

var (
	// ErrAxis indicates an axis outside the shape.
	ErrAxis = errors.New("phantom: axis out of range")
	// ErrBlobSize indicates a seed blob that does not fit the shape.
	ErrBlobSize = errors.New("phantom: blob size must be positive and fit every axis")
	// ErrCentre indicates a sphere centre of the wrong rank.
	ErrCentre = errors.New("phantom: centre rank does not match shape")
)

// Ramp returns an image whose intensity rises linearly from lo to hi along
// axis and is constant across the other axes.
func Ramp(shape grid.Shape, axis int, lo, hi float64) (*volume.Image, error) {
	img, err := volume.NewImage(shape)
	if err != nil {
		return nil, err
	}
	if axis < 0 || axis >= shape.Rank() {
		return nil, fmt.Errorf("%w: %d for rank %d", ErrAxis, axis, shape.Rank())
	}
	profile := make([]float64, shape[axis])
	if len(profile) == 1 {
		profile[0] = lo
	} else {
		floats.Span(profile, lo, hi)
	}
	coord := make([]int, shape.Rank())
	for i := range img.Pix {
		coord = shape.Coordinate(i, coord)
		img.Pix[i] = profile[coord[axis]]
	}
	return img, nil
}

// CornerSeeds returns a label volume with a size^N cube of label a at the
// origin corner and one of label b at the opposite corner.
func CornerSeeds(shape grid.Shape, size int, a, b volume.Label) (*volume.Labels, error) {
	labels, err := volume.NewLabels(shape)
	if err != nil {
		return nil, err
	}
	for _, n := range shape {
		if size < 1 || 2*size > n {
			return nil, fmt.Errorf("%w: %d in %v", ErrBlobSize, size, shape)
		}
	}
	coord := make([]int, shape.Rank())
	for i := range labels.Pix {
		coord = shape.Coordinate(i, coord)
		low, high := true, true
		for d, c := range coord {
			low = low && c < size
			high = high && c >= shape[d]-size
		}
		switch {
		case low:
			labels.Pix[i] = a
		case high:
			labels.Pix[i] = b
		}
	}
	return labels, nil
}

// Sphere returns a label volume holding fg inside the ball of the given centre
// and radius (in pixels) and zero elsewhere.
func Sphere(shape grid.Shape, centre []float64, radius float64, fg volume.Label) (*volume.Labels, error) {
	labels, err := volume.NewLabels(shape)
	if err != nil {
		return nil, err
	}
	if len(centre) != shape.Rank() {
		return nil, ErrCentre
	}
	r2 := radius * radius
	coord := make([]int, shape.Rank())
	for i := range labels.Pix {
		coord = shape.Coordinate(i, coord)
		var d2 float64
		for d, c := range coord {
			dx := float64(c) - centre[d]
			d2 += dx * dx
		}
		if d2 <= r2 {
			labels.Pix[i] = fg
		}
	}
	return labels, nil
}

// Punch clears every stride-th foreground pixel of labels to bg, in raster
// order, and returns the number of pixels cleared. It leaves isolated
// single-pixel holes when stride is large enough.
func Punch(labels *volume.Labels, fg, bg volume.Label, stride int) int {
	if stride < 1 {
		return 0
	}
	seen, cleared := 0, 0
	for i, l := range labels.Pix {
		if l != fg {
			continue
		}
		if seen%stride == stride-1 {
			labels.Pix[i] = bg
			cleared++
		}
		seen++
	}
	return cleared
}

// Centre returns the geometric centre of shape.
func Centre(shape grid.Shape) []float64 {
	c := make([]float64, shape.Rank())
	for d, n := range shape {
		c[d] = float64(n-1) / 2
	}
	return c
}
