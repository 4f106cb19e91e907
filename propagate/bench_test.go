package propagate_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/phantom"
	"github.com/katalvlaran/lesionfront/propagate"
	"github.com/katalvlaran/lesionfront/rule"
)

func benchmarkCompetition(b *testing.B, workers int) {
	shape := grid.Shape{64, 64, 64}
	img, err := phantom.Ramp(shape, 2, 0, 255)
	if err != nil {
		b.Fatal(err)
	}
	seeds, err := phantom.CornerSeeds(shape, 4, 1, 2)
	if err != nil {
		b.Fatal(err)
	}
	e, err := propagate.New(rule.NewRegionCompetition(), propagate.WithWorkers(workers))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		labels := seeds.Clone()
		b.StartTimer()
		if _, err := e.Update(context.Background(), labels, img); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompetition64Serial(b *testing.B)   { benchmarkCompetition(b, 1) }
func BenchmarkCompetition64Parallel(b *testing.B) { benchmarkCompetition(b, 0) }

func BenchmarkHoleFill64(b *testing.B) {
	shape := grid.Shape{64, 64, 64}
	mask, err := phantom.Sphere(shape, phantom.Centre(shape), 28, 1)
	if err != nil {
		b.Fatal(err)
	}
	phantom.Punch(mask, 1, 0, 11)
	e, err := propagate.New(rule.NewMajorityVote(1, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		labels := mask.Clone()
		b.StartTimer()
		if _, err := e.Update(context.Background(), labels, nil); err != nil {
			b.Fatal(err)
		}
	}
}
