package frontier

// Queues is the current/next wavefront pair sharing one Mask.
type Queues struct {
	cur  []int
	next []int
	mask *Mask
}

// NewQueues returns empty queues over n pixels.
func NewQueues(n int) *Queues {
	return &Queues{mask: NewMask(n)}
}

// Reset empties both queues and resizes the mask to n pixels, keeping the
// allocated backing arrays.
func (q *Queues) Reset(n int) {
	q.cur = q.cur[:0]
	q.next = q.next[:0]
	q.mask.Reset(n)
}

// PushCurrent appends idx to the current wavefront if it is not already
// queued. Used while seeding, before the first Drain.
func (q *Queues) PushCurrent(idx int) bool {
	if !q.mask.Mark(idx) {
		return false
	}
	q.cur = append(q.cur, idx)
	return true
}

// PushNext appends idx to the next wavefront if it is not already queued.
func (q *Queues) PushNext(idx int) bool {
	if !q.mask.Mark(idx) {
		return false
	}
	q.next = append(q.next, idx)
	return true
}

// Drain pops the whole current wavefront: every pixel is unmarked and the
// returned slice stays valid until the next SwapAndClear. The current queue
// is left empty.
func (q *Queues) Drain() []int {
	popped := q.cur
	for _, idx := range popped {
		q.mask.Unmark(idx)
	}
	q.cur = popped[:0]
	return popped
}

// SwapAndClear makes the next wavefront current and clears the other buffer.
func (q *Queues) SwapAndClear() {
	q.cur, q.next = q.next, q.cur[:0]
}

// Current returns the current wavefront without popping it.
// The slice must not be modified.
func (q *Queues) Current() []int { return q.cur }

// Len returns the size of the current wavefront.
func (q *Queues) Len() int { return len(q.cur) }

// NextLen returns the size of the next wavefront.
func (q *Queues) NextLen() int { return len(q.next) }

// IsQueued reports whether idx is in either wavefront.
func (q *Queues) IsQueued(idx int) bool { return q.mask.IsMarked(idx) }

// Mask exposes the seed mask.
func (q *Queues) Mask() *Mask { return q.mask }

// Consistent reports whether the mask marks exactly the pixels present in
// the two queues, each appearing once.
// Complexity: O(V + |cur| + |next|).
func (q *Queues) Consistent() bool {
	seen := make([]bool, q.mask.Len())
	for _, list := range [2][]int{q.cur, q.next} {
		for _, idx := range list {
			if idx < 0 || idx >= len(seen) || seen[idx] || !q.mask.IsMarked(idx) {
				return false
			}
			seen[idx] = true
		}
	}
	return q.mask.Count() == len(q.cur)+len(q.next)
}
