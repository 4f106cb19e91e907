package phantom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/phantom"
	"github.com/katalvlaran/lesionfront/volume"
)

func TestRamp(t *testing.T) {
	img, err := phantom.Ramp(grid.Shape{2, 5}, 1, 0, 100)
	require.NoError(t, err)
	for x := 0; x < 2; x++ {
		require.Equal(t, 0.0, img.At(x, 0))
		require.Equal(t, 50.0, img.At(x, 2))
		require.Equal(t, 100.0, img.At(x, 4))
	}

	_, err = phantom.Ramp(grid.Shape{2, 5}, 2, 0, 1)
	require.ErrorIs(t, err, phantom.ErrAxis)
}

func TestCornerSeeds(t *testing.T) {
	labels, err := phantom.CornerSeeds(grid.Shape{5, 5, 6}, 2, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 8, labels.Count(1))
	require.Equal(t, 8, labels.Count(2))
	require.Equal(t, volume.Label(1), labels.At(0, 0, 0))
	require.Equal(t, volume.Label(2), labels.At(4, 4, 5))

	_, err = phantom.CornerSeeds(grid.Shape{3, 3}, 2, 1, 2)
	require.ErrorIs(t, err, phantom.ErrBlobSize)
}

func TestSphereAndPunch(t *testing.T) {
	shape := grid.Shape{9, 9, 9}
	labels, err := phantom.Sphere(shape, phantom.Centre(shape), 3, 1)
	require.NoError(t, err)
	// 123 lattice points lie within distance 3 of the origin.
	require.Equal(t, 123, labels.Count(1))

	cleared := phantom.Punch(labels, 1, 0, 10)
	require.Equal(t, 12, cleared)
	require.Equal(t, 111, labels.Count(1))

	_, err = phantom.Sphere(shape, []float64{1, 1}, 3, 1)
	require.ErrorIs(t, err, phantom.ErrCentre)
}
