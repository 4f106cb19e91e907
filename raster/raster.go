package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/volume"
)

var (
	// ErrRank indicates a volume that is neither 2-D nor 3-D.
	ErrRank = errors.New("raster: volume must have rank 2 or 3")
	// ErrPlane indicates a plane index outside axis 2.
	ErrPlane = errors.New("raster: plane index out of range")
	// ErrEmptyImage indicates an image with no pixels.
	ErrEmptyImage = errors.New("raster: image has no pixels")
)

// FromImage returns the luma of img as a 2-D intensity volume in [0, 255].
func FromImage(img image.Image) (*volume.Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	gray := imaging.Grayscale(img)
	out, err := volume.NewImage(grid.Shape{b.Dx(), b.Dy()})
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			out.Pix[y*b.Dx()+x] = float64(row[x*4])
		}
	}
	return out, nil
}

// Mask thresholds img by luminance: pixels at or above level get fg, the
// others zero. Fully transparent pixels count as above the level.
func Mask(img image.Image, level uint8, fg volume.Label) (*volume.Labels, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	bin := segment.Threshold(img, level)
	out, err := volume.NewLabels(grid.Shape{b.Dx(), b.Dy()})
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if bin.GrayAt(bin.Rect.Min.X+x, bin.Rect.Min.Y+y).Y != 0 {
				out.Pix[y*b.Dx()+x] = fg
			}
		}
	}
	return out, nil
}

// Smooth returns a copy of im with every plane blurred by a Gaussian of the
// given radius. Intensities are quantised to 8 bits over the volume's range
// for the blur and mapped back afterwards. A non-positive radius or a flat
// volume yields an unmodified copy.
func Smooth(im *volume.Image, radius float64) (*volume.Image, error) {
	if err := checkRank(im.Shape); err != nil {
		return nil, err
	}
	out := &volume.Image{
		Shape:   im.Shape.Clone(),
		Spacing: append([]float64(nil), im.Spacing...),
		Origin:  append([]float64(nil), im.Origin...),
		Pix:     append([]float64(nil), im.Pix...),
	}
	lo, hi := bounds(im.Pix)
	if radius <= 0 || hi == lo {
		return out, nil
	}

	w, h := im.Shape[0], im.Shape[1]
	scale := (hi - lo) / 255
	for z := 0; z < planes(im.Shape); z++ {
		src := image.NewGray(image.Rect(0, 0, w, h))
		base := z * w * h
		for i := 0; i < w*h; i++ {
			src.Pix[i] = uint8(math.Round((im.Pix[base+i] - lo) / scale))
		}
		dst := blur.Gaussian(src, radius)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Pix[base+y*w+x] = lo + float64(dst.RGBAAt(x, y).R)*scale
			}
		}
	}
	return out, nil
}

// Slice returns plane z of im as an 8-bit image, rescaled from the volume's
// intensity range to [0, 255].
func Slice(im *volume.Image, z int) (*image.Gray, error) {
	if err := checkPlane(im.Shape, z); err != nil {
		return nil, err
	}
	w, h := im.Shape[0], im.Shape[1]
	lo, hi := bounds(im.Pix)
	out := image.NewGray(image.Rect(0, 0, w, h))
	base := z * w * h
	for i := 0; i < w*h; i++ {
		v := 0.0
		if hi > lo {
			v = (im.Pix[base+i] - lo) / (hi - lo) * 255
		}
		out.Pix[i] = uint8(math.Round(v))
	}
	return out, nil
}

// Overlay renders plane z of im in gray and tints every labelled pixel toward
// its palette colour by alpha in [0, 1], blending in CIE-Lab. Pixels equal to
// background are left gray.
func Overlay(im *volume.Image, labels *volume.Labels, z int, alpha float64, background volume.Label) (*image.NRGBA, error) {
	if err := volume.SameShape(im.Shape, labels.Shape); err != nil {
		return nil, err
	}
	gray, err := Slice(im, z)
	if err != nil {
		return nil, err
	}
	alpha = math.Max(0, math.Min(1, alpha))

	w, h := im.Shape[0], im.Shape[1]
	base := z * w * h
	pal := NewPalette()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := gray.Pix[y*w+x]
			c := color.NRGBA{R: g, G: g, B: g, A: 0xFF}
			if l := labels.Pix[base+y*w+x]; l != background {
				c = pal.Blend(g, l, alpha)
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out, nil
}

func checkRank(s grid.Shape) error {
	if r := s.Rank(); r != 2 && r != 3 {
		return fmt.Errorf("%w: got %d", ErrRank, r)
	}
	return nil
}

func checkPlane(s grid.Shape, z int) error {
	if err := checkRank(s); err != nil {
		return err
	}
	if z < 0 || z >= planes(s) {
		return fmt.Errorf("%w: %d of %d", ErrPlane, z, planes(s))
	}
	return nil
}

func planes(s grid.Shape) int {
	if s.Rank() == 3 {
		return s[2]
	}
	return 1
}

func bounds(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range xs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
