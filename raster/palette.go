package raster

import (
	"image/color"
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/lesionfront/volume"
)

// goldenAngle spreads consecutive label hues as far apart as possible.
const goldenAngle = 137.50776405003785

// Palette maps labels to well-separated colours. Colours are generated on
// demand and cached; a Palette is safe for concurrent use.
type Palette struct {
	mu     sync.Mutex
	colors map[volume.Label]colorful.Color
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{colors: make(map[volume.Label]colorful.Color)}
}

// Color returns the colour of label l. Hues step by the golden angle from
// label to label at fixed chroma and lightness in HCL space.
func (p *Palette) Color(l volume.Label) colorful.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.colors[l]; ok {
		return c
	}
	hue := math.Mod(float64(l)*goldenAngle, 360)
	c := colorful.Hcl(hue, 0.55, 0.65).Clamped()
	p.colors[l] = c
	return c
}

// NRGBA returns the colour of l as an opaque color.NRGBA.
func (p *Palette) NRGBA(l volume.Label) color.NRGBA {
	r, g, b := p.Color(l).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// Blend mixes a gray level with the colour of l in Lab space.
func (p *Palette) Blend(gray uint8, l volume.Label, alpha float64) color.NRGBA {
	v := float64(gray) / 255
	base := colorful.Color{R: v, G: v, B: v}
	r, g, b := base.BlendLab(p.Color(l), alpha).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
