package grid

import "fmt"

// Connectivity selects which positions of the radius box count as neighbours.
type Connectivity int

const (
	// ConnFull uses every position of the (2r+1)^N box except the centre.
	ConnFull Connectivity = iota
	// ConnFace uses only positions displaced along exactly one axis.
	ConnFace
)

// String returns the connectivity name.
func (c Connectivity) String() string {
	switch c {
	case ConnFull:
		return "full"
	case ConnFace:
		return "face"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Shape is the extent of an N-dimensional buffer, axis 0 fastest.
type Shape []int

// Radius holds one neighbourhood radius per axis.
type Radius []int

// UniformRadius returns a Radius of the given rank with every component r.
func UniformRadius(rank, r int) Radius {
	rad := make(Radius, rank)
	for i := range rad {
		rad[i] = r
	}
	return rad
}

// Neighborhood is the precomputed offset table for one shape and radius.
// It is immutable once built and safe for concurrent use; per-goroutine
// scratch lives in Cursor.
type Neighborhood struct {
	shape   Shape
	strides []int
	radius  Radius
	conn    Connectivity
	offsets []int64
	deltas  [][]int
}

// Cursor resolves in-bounds neighbours of a linear index. A Cursor is not safe
// for concurrent use; create one per goroutine with Neighborhood.NewCursor.
type Cursor struct {
	nb    *Neighborhood
	coord []int
}
