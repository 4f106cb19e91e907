package propagate

// SetMinParallelFrontier lowers the wavefront size at which evaluation is split
// across workers and returns a function restoring the previous value.
func SetMinParallelFrontier(n int) (restore func()) {
	prev := minParallelFrontier
	minParallelFrontier = n
	return func() { minParallelFrontier = prev }
}
