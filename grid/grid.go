package grid

// Validate checks that s has at least one axis and positive extents.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	for _, n := range s {
		if n < 1 {
			return ErrNonPositiveExtent
		}
	}
	return nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Len returns the number of elements of a buffer with shape s.
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, e := range s {
		n *= e
	}
	return n
}

// Equal reports whether s and o describe the same extent.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// InBounds reports whether coord lies within s.
// Complexity: O(N).
func (s Shape) InBounds(coord []int) bool {
	if len(coord) != len(s) {
		return false
	}
	for d, c := range coord {
		if c < 0 || c >= s[d] {
			return false
		}
	}
	return true
}

// Index maps coord to its linear buffer index. coord must be in bounds.
// Complexity: O(N).
func (s Shape) Index(coord []int) int {
	idx, stride := 0, 1
	for d, c := range coord {
		idx += c * stride
		stride *= s[d]
	}
	return idx
}

// Coordinate writes the coordinate of linear index idx into dst and returns it.
// dst is reallocated when its length differs from the rank.
// Complexity: O(N).
func (s Shape) Coordinate(idx int, dst []int) []int {
	if len(dst) != len(s) {
		dst = make([]int, len(s))
	}
	for d, n := range s {
		dst[d] = idx % n
		idx /= n
	}
	return dst
}

// Strides returns the per-axis element strides of a buffer with shape s.
// Strides(s)[0] is always 1.
func Strides(s Shape) []int {
	strides := make([]int, len(s))
	stride := 1
	for d, n := range s {
		strides[d] = stride
		stride *= n
	}
	return strides
}
