package grid_test

import (
	"testing"

	"github.com/katalvlaran/lesionfront/grid"
)

// BenchmarkCursorNeighbors walks every voxel of a 64³ volume with a 26-neighbourhood.
// Complexity: O(V×K)
func BenchmarkCursorNeighbors(b *testing.B) {
	shape := grid.Shape{64, 64, 64}
	nb, err := grid.BuildOffsetTable(shape, grid.UniformRadius(3, 1), grid.ConnFull)
	if err != nil {
		b.Fatalf("setup BuildOffsetTable failed: %v", err)
	}
	cur := nb.NewCursor()
	buf := make([]int, 0, nb.Size())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < shape.Len(); idx++ {
			buf = cur.Neighbors(idx, buf[:0])
		}
	}
}
