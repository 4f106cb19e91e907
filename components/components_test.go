package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lesionfront/components"
	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/volume"
)

// plane builds a 2-D label buffer from rows of equal length; rows[y][x].
func plane(t *testing.T, rows [][]volume.Label) *volume.Labels {
	t.Helper()
	labels, err := volume.NewLabels(grid.Shape{len(rows[0]), len(rows)})
	require.NoError(t, err)
	for y, row := range rows {
		for x, l := range row {
			labels.Set(l, x, y)
		}
	}
	return labels
}

func TestFind_Connectivity(t *testing.T) {
	labels := plane(t, [][]volume.Label{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
	})

	full, err := components.Find(labels, 1, grid.ConnFull)
	require.NoError(t, err)
	require.Len(t, full, 3) // diagonal pair, right column, bottom pair
	require.Equal(t, []int{2, 2, 2}, []int{full[0].Size(), full[1].Size(), full[2].Size()})

	face, err := components.Find(labels, 1, grid.ConnFace)
	require.NoError(t, err)
	require.Len(t, face, 4)
	require.Equal(t, 0, face[0].Indices[0])
	require.Equal(t, 1, face[0].Size())
}

func TestFind_BoundingBox(t *testing.T) {
	labels := plane(t, [][]volume.Label{
		{0, 0, 0, 0, 0},
		{0, 2, 2, 2, 0},
		{0, 0, 2, 0, 0},
		{0, 0, 2, 2, 0},
	})
	cs, err := components.Find(labels, 2, grid.ConnFace)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	require.Equal(t, 6, cs[0].Size())
	require.Equal(t, []int{1, 1}, cs[0].Min)
	require.Equal(t, []int{3, 3}, cs[0].Max)
	require.Equal(t, volume.Label(2), cs[0].Label)
}

func TestFindAll_SplitsByLabel(t *testing.T) {
	labels := plane(t, [][]volume.Label{
		{1, 1, 2},
		{1, 2, 2},
		{0, 0, 3},
	})
	cs, err := components.FindAll(labels, 0, grid.ConnFull)
	require.NoError(t, err)
	require.Len(t, cs, 3)
	got := map[volume.Label]int{}
	for _, c := range cs {
		got[c.Label] = c.Size()
	}
	require.Equal(t, map[volume.Label]int{1: 3, 2: 3, 3: 1}, got)
}

func TestFind_3D(t *testing.T) {
	labels, _ := volume.NewLabels(grid.Shape{3, 3, 3})
	labels.Set(1, 0, 0, 0)
	labels.Set(1, 1, 1, 1)
	labels.Set(1, 2, 2, 2)
	labels.Set(1, 2, 0, 2)

	full, err := components.Find(labels, 1, grid.ConnFull)
	require.NoError(t, err)
	require.Len(t, full, 1)
	require.Equal(t, 4, full[0].Size())

	face, err := components.Find(labels, 1, grid.ConnFace)
	require.NoError(t, err)
	require.Len(t, face, 4)
}

func TestLargestAndSort(t *testing.T) {
	_, ok := components.Largest(nil)
	require.False(t, ok)

	labels := plane(t, [][]volume.Label{
		{1, 0, 1, 1},
		{0, 0, 0, 0},
		{1, 1, 1, 0},
	})
	cs, err := components.Find(labels, 1, grid.ConnFace)
	require.NoError(t, err)
	require.Len(t, cs, 3)

	big, ok := components.Largest(cs)
	require.True(t, ok)
	require.Equal(t, 3, big.Size())

	components.SortBySize(cs)
	require.Equal(t, []int{3, 2, 1}, []int{cs[0].Size(), cs[1].Size(), cs[2].Size()})
}

func TestFind_Errors(t *testing.T) {
	_, err := components.Find(nil, 1, grid.ConnFull)
	require.ErrorIs(t, err, components.ErrNilLabels)
}
