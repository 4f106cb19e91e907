package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lesionfront/config"
	"github.com/katalvlaran/lesionfront/propagate"
	"github.com/katalvlaran/lesionfront/volume"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{21, 21, 42}, cfg.Phantom.Shape)
	assert.Equal(t, config.ScorerSeed, cfg.Competition.Scorer)

	_, err := propagate.New(cfg.CompetitionRule(), cfg.EngineOptions()...)
	require.NoError(t, err)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
engine:
  max_iterations: 50
  radius: [2, 2, 1]
  connectivity: face
  workers: 4
competition:
  scorer: neighbor
  seed_intensities:
    1: 20.5
    2: 200
hole_fill:
  threshold: 0
`))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Engine.MaxIterations)
	assert.Equal(t, []int{2, 2, 1}, cfg.Engine.Radius)
	assert.Equal(t, "face", cfg.Engine.Connectivity)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, map[volume.Label]float64{1: 20.5, 2: 200}, cfg.Competition.SeedIntensities)
	assert.Equal(t, 0, cfg.HoleFill.Threshold)
	// Untouched sections keep their defaults.
	assert.Equal(t, volume.Label(1), cfg.HoleFill.Foreground)
	assert.Equal(t, 3, cfg.Phantom.SeedSize)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":          "engine:\n  speed: 3\n",
		"negative iterations":  "engine:\n  max_iterations: -1\n",
		"empty radius":         "engine:\n  radius: []\n",
		"negative radius":      "engine:\n  radius: [1, -1]\n",
		"bad connectivity":     "engine:\n  connectivity: diagonal\n",
		"negative workers":     "engine:\n  workers: -3\n",
		"bad scorer":           "competition:\n  scorer: gradient\n",
		"foreground is bg":     "hole_fill:\n  foreground: 0\n",
		"negative threshold":   "hole_fill:\n  threshold: -1\n",
		"bad shape":            "phantom:\n  shape: [4, 0]\n",
		"ramp axis":            "phantom:\n  ramp_axis: 3\n",
		"seed does not fit":    "phantom:\n  shape: [5, 5]\n  ramp_axis: 0\n",
		"zero punch stride":    "phantom:\n  punch_stride: 0\n",
		"not a mapping":        "- 1\n- 2\n",
		"negative smoothing":   "phantom:\n  smooth_radius: -1\n",
		"zero sphere radius":   "phantom:\n  sphere_radius: 0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("engine:\n  workers: -3\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesionfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hole_fill:\n  foreground: 9\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, volume.Label(9), cfg.HoleFill.Foreground)
	require.Equal(t, volume.Label(9), cfg.HoleFillRule().Foreground())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompetitionRule(t *testing.T) {
	cfg := config.Default()
	cfg.Competition.Scorer = config.ScorerNeighbor
	cfg.Competition.SeedIntensities = map[volume.Label]float64{1: 5}
	r := cfg.CompetitionRule()
	require.Equal(t, "region-competition", r.Name())

	// The neighbour scorer prefers the label whose own pixel looks alike,
	// whatever the seed intensities say.
	shape := []int{3}
	img, _ := volume.ImageFrom(shape, []float64{100, 190, 200})
	labels, _ := volume.LabelsFrom(shape, []volume.Label{1, 0, 2})
	e, err := propagate.New(r)
	require.NoError(t, err)
	_, err = e.Update(t.Context(), labels, img)
	require.NoError(t, err)
	require.Equal(t, volume.Label(2), labels.Pix[1])
	require.Equal(t, map[volume.Label]float64{1: 5, 2: 200}, r.SeedIntensities())

}
