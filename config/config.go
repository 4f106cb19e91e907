// Package config loads the command-line tool's YAML configuration and maps it
// onto engine options and decision rules.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/propagate"
	"github.com/katalvlaran/lesionfront/rule"
	"github.com/katalvlaran/lesionfront/volume"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Scorer names accepted in competition.scorer.
const (
	ScorerSeed     = "seed"
	ScorerNeighbor = "neighbor"
)

// Config is the root of the YAML document.
type Config struct {
	Engine      Engine      `yaml:"engine"`
	Competition Competition `yaml:"competition"`
	HoleFill    HoleFill    `yaml:"hole_fill"`
	Phantom     Phantom     `yaml:"phantom"`
}

// Engine holds the propagation driver settings.
type Engine struct {
	MaxIterations int          `yaml:"max_iterations"`
	Radius        []int        `yaml:"radius"`
	Connectivity  string       `yaml:"connectivity"`
	Background    volume.Label `yaml:"background"`
	Workers       int          `yaml:"workers"`
}

// Competition holds the region-competition rule settings.
type Competition struct {
	Scorer          string                   `yaml:"scorer"`
	SeedIntensities map[volume.Label]float64 `yaml:"seed_intensities,omitempty"`
}

// HoleFill holds the majority-vote rule settings.
type HoleFill struct {
	Foreground volume.Label `yaml:"foreground"`
	Threshold  int          `yaml:"threshold"`
}

// Phantom describes the synthetic volumes the CLI runs on.
type Phantom struct {
	Shape        []int   `yaml:"shape"`
	SeedSize     int     `yaml:"seed_size"`
	RampAxis     int     `yaml:"ramp_axis"`
	RampLow      float64 `yaml:"ramp_low"`
	RampHigh     float64 `yaml:"ramp_high"`
	SmoothRadius float64 `yaml:"smooth_radius"`
	SphereRadius float64 `yaml:"sphere_radius"`
	PunchStride  int     `yaml:"punch_stride"`
}

// Default returns the configuration used when no file is given: the
// 21×21×42 two-seed ramp and a radius-8 sphere with every 7th pixel punched.
func Default() Config {
	return Config{
		Engine: Engine{
			MaxIterations: 1000,
			Radius:        []int{1},
			Connectivity:  grid.ConnFull.String(),
			Background:    0,
			Workers:       1,
		},
		Competition: Competition{Scorer: ScorerSeed},
		HoleFill: HoleFill{
			Foreground: 1,
			Threshold:  rule.DefaultMajorityThreshold,
		},
		Phantom: Phantom{
			Shape:        []int{21, 21, 42},
			SeedSize:     3,
			RampAxis:     2,
			RampLow:      0,
			RampHigh:     255,
			SphereRadius: 8,
			PunchStride:  7,
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that the engine would otherwise reject later.
func (c Config) Validate() error {
	e := c.Engine
	if e.MaxIterations < 0 {
		return fmt.Errorf("%w: engine.max_iterations %d", ErrInvalid, e.MaxIterations)
	}
	if e.Workers < 0 {
		return fmt.Errorf("%w: engine.workers %d", ErrInvalid, e.Workers)
	}
	if len(e.Radius) == 0 {
		return fmt.Errorf("%w: engine.radius is empty", ErrInvalid)
	}
	for _, r := range e.Radius {
		if r < 0 {
			return fmt.Errorf("%w: engine.radius %v", ErrInvalid, e.Radius)
		}
	}
	if _, err := c.connectivity(); err != nil {
		return err
	}
	switch c.Competition.Scorer {
	case ScorerSeed, ScorerNeighbor:
	default:
		return fmt.Errorf("%w: competition.scorer %q", ErrInvalid, c.Competition.Scorer)
	}
	if c.HoleFill.Foreground == e.Background {
		return fmt.Errorf("%w: hole_fill.foreground equals engine.background", ErrInvalid)
	}
	if c.HoleFill.Threshold < 0 {
		return fmt.Errorf("%w: hole_fill.threshold %d", ErrInvalid, c.HoleFill.Threshold)
	}

	p := c.Phantom
	if err := grid.Shape(p.Shape).Validate(); err != nil {
		return fmt.Errorf("%w: phantom.shape: %v", ErrInvalid, err)
	}
	if p.RampAxis < 0 || p.RampAxis >= len(p.Shape) {
		return fmt.Errorf("%w: phantom.ramp_axis %d", ErrInvalid, p.RampAxis)
	}
	for _, n := range p.Shape {
		if p.SeedSize < 1 || 2*p.SeedSize > n {
			return fmt.Errorf("%w: phantom.seed_size %d", ErrInvalid, p.SeedSize)
		}
	}
	if p.SphereRadius <= 0 || p.PunchStride < 1 || p.SmoothRadius < 0 {
		return fmt.Errorf("%w: phantom sphere_radius, punch_stride or smooth_radius", ErrInvalid)
	}
	return nil
}

// EngineOptions maps the engine section onto propagate options.
func (c Config) EngineOptions() []propagate.Option {
	conn, _ := c.connectivity()
	return []propagate.Option{
		propagate.WithMaxIterations(c.Engine.MaxIterations),
		propagate.WithRadius(c.Engine.Radius...),
		propagate.WithConnectivity(conn),
		propagate.WithBackground(c.Engine.Background),
		propagate.WithWorkers(c.Engine.Workers),
	}
}

// CompetitionRule builds the region-competition rule.
func (c Config) CompetitionRule() *rule.RegionCompetition {
	opts := []rule.CompetitionOption{rule.WithSeedIntensities(c.Competition.SeedIntensities)}
	if c.Competition.Scorer == ScorerNeighbor {
		opts = append(opts, rule.WithScorer(rule.ClosestNeighborIntensity))
	}
	return rule.NewRegionCompetition(opts...)
}

// HoleFillRule builds the majority-vote rule.
func (c Config) HoleFillRule() *rule.MajorityVote {
	return rule.NewMajorityVote(c.HoleFill.Foreground, c.HoleFill.Threshold)
}

func (c Config) connectivity() (grid.Connectivity, error) {
	switch c.Engine.Connectivity {
	case grid.ConnFull.String():
		return grid.ConnFull, nil
	case grid.ConnFace.String():
		return grid.ConnFace, nil
	}
	return 0, fmt.Errorf("%w: engine.connectivity %q", ErrInvalid, c.Engine.Connectivity)
}
