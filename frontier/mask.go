package frontier

// Mask marks pixels that are currently queued, one bool per pixel.
// It is not safe for concurrent use.
type Mask struct {
	bits  []bool
	count int
}

// NewMask returns a Mask over n pixels with nothing marked.
func NewMask(n int) *Mask {
	return &Mask{bits: make([]bool, n)}
}

// Mark sets idx and reports whether it was previously unmarked.
func (m *Mask) Mark(idx int) bool {
	if m.bits[idx] {
		return false
	}
	m.bits[idx] = true
	m.count++
	return true
}

// Unmark clears idx and reports whether it was previously marked.
func (m *Mask) Unmark(idx int) bool {
	if !m.bits[idx] {
		return false
	}
	m.bits[idx] = false
	m.count--
	return true
}

// IsMarked reports whether idx is marked.
func (m *Mask) IsMarked(idx int) bool { return m.bits[idx] }

// Count returns the number of marked pixels.
func (m *Mask) Count() int { return m.count }

// Len returns the number of pixels the mask covers.
func (m *Mask) Len() int { return len(m.bits) }

// Reset unmarks every pixel, resizing the mask to n pixels.
func (m *Mask) Reset(n int) {
	if cap(m.bits) < n {
		m.bits = make([]bool, n)
	} else {
		m.bits = m.bits[:n]
		clear(m.bits)
	}
	m.count = 0
}
