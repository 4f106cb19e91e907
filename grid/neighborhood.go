package grid

// BuildOffsetTable precomputes the linear neighbour offsets for a buffer of the
// given shape. Positions are enumerated in raster order over the radius box,
// axis 0 fastest, with the centre removed.
// Returns ErrEmptyShape or ErrNonPositiveExtent for an invalid shape,
// ErrRadiusRank, ErrNegativeRadius or ErrRadiusTooLarge for an invalid radius,
// and ErrEmptyNeighborhood when no position survives the connectivity filter.
// Complexity: O(K×N) time and memory.
func BuildOffsetTable(shape Shape, radius Radius, conn Connectivity) (*Neighborhood, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(radius) != len(shape) {
		return nil, ErrRadiusRank
	}
	for d, r := range radius {
		if r < 0 {
			return nil, ErrNegativeRadius
		}
		if r > shape[d] {
			return nil, ErrRadiusTooLarge
		}
	}

	strides := Strides(shape)
	boxShape := make(Shape, len(shape))
	for d, r := range radius {
		boxShape[d] = 2*r + 1
	}

	nb := &Neighborhood{
		shape:   shape.Clone(),
		strides: strides,
		radius:  append(Radius(nil), radius...),
		conn:    conn,
	}
	pos := make([]int, len(shape))
	for i, n := 0, boxShape.Len(); i < n; i++ {
		pos = boxShape.Coordinate(i, pos)
		delta := make([]int, len(shape))
		nonZero := 0
		var off int64
		for d := range pos {
			delta[d] = pos[d] - radius[d]
			if delta[d] != 0 {
				nonZero++
			}
			off += int64(delta[d]) * int64(strides[d])
		}
		if nonZero == 0 {
			continue // centre
		}
		if conn == ConnFace && nonZero != 1 {
			continue
		}
		nb.offsets = append(nb.offsets, off)
		nb.deltas = append(nb.deltas, delta)
	}
	if len(nb.offsets) == 0 {
		return nil, ErrEmptyNeighborhood
	}

	return nb, nil
}

// Size returns K, the number of neighbour positions (centre excluded).
func (nb *Neighborhood) Size() int { return len(nb.offsets) }

// Offsets returns the linear neighbour deltas. The slice must not be modified.
func (nb *Neighborhood) Offsets() []int64 { return nb.offsets }

// Deltas returns the per-neighbour coordinate displacements, parallel to Offsets.
// The slices must not be modified.
func (nb *Neighborhood) Deltas() [][]int { return nb.deltas }

// Shape returns the shape the table was built for.
func (nb *Neighborhood) Shape() Shape { return nb.shape }

// Strides returns the per-axis strides of the table's shape.
func (nb *Neighborhood) Strides() []int { return nb.strides }

// Radius returns the per-axis radius.
func (nb *Neighborhood) Radius() Radius { return nb.radius }

// Connectivity returns the connectivity the table was built with.
func (nb *Neighborhood) Connectivity() Connectivity { return nb.conn }

// Matches reports whether the table can address a buffer of shape s.
// A false result means the table must be rebuilt.
func (nb *Neighborhood) Matches(s Shape) bool {
	return nb != nil && nb.shape.Equal(s)
}

// NewCursor returns a Cursor with its own coordinate scratch space.
func (nb *Neighborhood) NewCursor() *Cursor {
	return &Cursor{nb: nb, coord: make([]int, len(nb.shape))}
}

// Neighbors appends to dst the linear indices of every in-bounds neighbour of
// idx, in offset-table order, and returns the extended slice.
// Complexity: O(N + K) for interior pixels, O(N + K×N) near a face.
func (c *Cursor) Neighbors(idx int, dst []int) []int {
	nb := c.nb
	c.coord = nb.shape.Coordinate(idx, c.coord)
	if c.interior() {
		for _, off := range nb.offsets {
			dst = append(dst, idx+int(off))
		}
		return dst
	}
	for k, delta := range nb.deltas {
		if c.inBounds(delta) {
			dst = append(dst, idx+int(nb.offsets[k]))
		}
	}
	return dst
}

// Coordinate returns the coordinate of the last index passed to Neighbors.
// The slice is reused by the next call.
func (c *Cursor) Coordinate() []int { return c.coord }

// interior reports whether every neighbour of the current coordinate is in bounds.
func (c *Cursor) interior() bool {
	for d, x := range c.coord {
		r := c.nb.radius[d]
		if x < r || x >= c.nb.shape[d]-r {
			return false
		}
	}
	return true
}

// inBounds reports whether coord+delta lies within the shape.
func (c *Cursor) inBounds(delta []int) bool {
	for d, x := range c.coord {
		y := x + delta[d]
		if y < 0 || y >= c.nb.shape[d] {
			return false
		}
	}
	return true
}
