package volume

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lesionfront/grid"
)

// Label is the value stored in a label buffer: a region id for region
// competition, a foreground/background value for hole filling.
type Label uint32

// Sentinel errors for buffer construction.
var (
	// ErrPixelCount indicates a pixel slice whose length does not match the shape.
	ErrPixelCount = errors.New("volume: pixel count does not match shape")
	// ErrShapeMismatch indicates two buffers that do not share an extent.
	ErrShapeMismatch = errors.New("volume: buffers have different shapes")
)

// Image is an N-dimensional grid of scalar intensities.
type Image struct {
	Shape   grid.Shape
	Spacing []float64
	Origin  []float64
	Pix     []float64
}

// NewImage allocates a zeroed Image with unit spacing and zero origin.
func NewImage(shape grid.Shape) (*Image, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Image{
		Shape:   shape.Clone(),
		Spacing: unitSpacing(len(shape)),
		Origin:  make([]float64, len(shape)),
		Pix:     make([]float64, shape.Len()),
	}, nil
}

// ImageFrom wraps pix as an Image without copying.
func ImageFrom(shape grid.Shape, pix []float64) (*Image, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(pix) != shape.Len() {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrPixelCount, len(pix), shape.Len())
	}
	return &Image{
		Shape:   shape.Clone(),
		Spacing: unitSpacing(len(shape)),
		Origin:  make([]float64, len(shape)),
		Pix:     pix,
	}, nil
}

// At returns the intensity at coord.
func (im *Image) At(coord ...int) float64 { return im.Pix[im.Shape.Index(coord)] }

// Set stores v at coord.
func (im *Image) Set(v float64, coord ...int) { im.Pix[im.Shape.Index(coord)] = v }

// Labels is an N-dimensional grid of labels.
type Labels struct {
	Shape grid.Shape
	Pix   []Label
}

// NewLabels allocates a Labels buffer filled with zero (the default background).
func NewLabels(shape grid.Shape) (*Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Labels{Shape: shape.Clone(), Pix: make([]Label, shape.Len())}, nil
}

// LabelsFrom wraps pix as a Labels buffer without copying.
func LabelsFrom(shape grid.Shape, pix []Label) (*Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(pix) != shape.Len() {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrPixelCount, len(pix), shape.Len())
	}
	return &Labels{Shape: shape.Clone(), Pix: pix}, nil
}

// At returns the label at coord.
func (l *Labels) At(coord ...int) Label { return l.Pix[l.Shape.Index(coord)] }

// Set stores v at coord.
func (l *Labels) Set(v Label, coord ...int) { l.Pix[l.Shape.Index(coord)] = v }

// Clone returns a deep copy of l.
func (l *Labels) Clone() *Labels {
	return &Labels{Shape: l.Shape.Clone(), Pix: append([]Label(nil), l.Pix...)}
}

// Count returns the number of pixels equal to v.
func (l *Labels) Count(v Label) int {
	n := 0
	for _, p := range l.Pix {
		if p == v {
			n++
		}
	}
	return n
}

// Histogram returns the pixel count of every label present in l.
func (l *Labels) Histogram() map[Label]int {
	h := make(map[Label]int)
	for _, p := range l.Pix {
		h[p]++
	}
	return h
}

// Fill sets every pixel of l to v.
func (l *Labels) Fill(v Label) {
	for i := range l.Pix {
		l.Pix[i] = v
	}
}

// SameShape returns ErrShapeMismatch unless a and b share an extent.
func SameShape(a, b grid.Shape) error {
	if !a.Equal(b) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a, b)
	}
	return nil
}

func unitSpacing(rank int) []float64 {
	s := make([]float64, rank)
	for i := range s {
		s[i] = 1
	}
	return s
}
