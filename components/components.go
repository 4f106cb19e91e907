// Package components labels connected regions of a label volume, for counting
// and sizing lesions after propagation.
//
// Complexity: O(N·K) time, O(N) memory, where K is the neighbourhood size.
package components

import (
	"errors"
	"sort"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/volume"
)

// ErrNilLabels is returned when no label buffer is given.
var ErrNilLabels = errors.New("components: label buffer is nil")

// Component is one connected region of a single label.
type Component struct {
	Label   volume.Label
	Indices []int // linear indices in discovery order; Indices[0] is the lowest
	Min     []int // inclusive bounding box
	Max     []int
}

// Size returns the number of pixels in c.
func (c Component) Size() int { return len(c.Indices) }

// Find returns the connected regions of pixels equal to target, in raster
// order of their first pixel.
func Find(labels *volume.Labels, target volume.Label, conn grid.Connectivity) ([]Component, error) {
	return find(labels, conn, func(l volume.Label) bool { return l == target })
}

// FindAll returns the connected regions of every label other than background.
// Neighbouring pixels join only if they carry the same label.
func FindAll(labels *volume.Labels, background volume.Label, conn grid.Connectivity) ([]Component, error) {
	return find(labels, conn, func(l volume.Label) bool { return l != background })
}

// Largest returns the component with the most pixels; ties go to the earlier
// one. ok is false for an empty slice.
func Largest(cs []Component) (c Component, ok bool) {
	for i := range cs {
		if !ok || cs[i].Size() > c.Size() {
			c, ok = cs[i], true
		}
	}
	return c, ok
}

// SortBySize orders cs by decreasing size, keeping raster order among equals.
func SortBySize(cs []Component) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Size() > cs[j].Size() })
}

func find(labels *volume.Labels, conn grid.Connectivity, keep func(volume.Label) bool) ([]Component, error) {
	if labels == nil {
		return nil, ErrNilLabels
	}
	nb, err := grid.BuildOffsetTable(labels.Shape, grid.UniformRadius(labels.Shape.Rank(), 1), conn)
	if err != nil {
		return nil, err
	}
	cur := nb.NewCursor()
	seen := make([]bool, len(labels.Pix))
	buf := make([]int, 0, nb.Size())
	coord := make([]int, labels.Shape.Rank())
	var comps []Component

	for i0, l := range labels.Pix {
		if seen[i0] || !keep(l) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		comp := Component{
			Label: l,
			Min:   labels.Shape.Coordinate(i0, nil),
			Max:   labels.Shape.Coordinate(i0, nil),
		}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			coord = labels.Shape.Coordinate(u, coord)
			for d, c := range coord {
				comp.Min[d] = min(comp.Min[d], c)
				comp.Max[d] = max(comp.Max[d], c)
			}
			buf = cur.Neighbors(u, buf[:0])
			for _, v := range buf {
				if !seen[v] && labels.Pix[v] == l {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comp.Indices = queue
		comps = append(comps, comp)
	}
	return comps, nil
}
