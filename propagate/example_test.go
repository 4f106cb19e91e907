package propagate_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/propagate"
	"github.com/katalvlaran/lesionfront/rule"
	"github.com/katalvlaran/lesionfront/volume"
)

// ExampleEngine_Update_competition grows two seeds across a 1-D step edge.
func ExampleEngine_Update_competition() {
	shape := grid.Shape{8}
	img, _ := volume.ImageFrom(shape, []float64{10, 12, 11, 13, 90, 88, 91, 89})
	labels, _ := volume.LabelsFrom(shape, []volume.Label{1, 0, 0, 0, 0, 0, 0, 2})

	e, _ := propagate.New(rule.NewRegionCompetition())
	res, _ := e.Update(context.Background(), labels, img)

	fmt.Println(labels.Pix)
	fmt.Println(res.State, res.Iterations, res.TotalChanged)
	// Output:
	// [1 1 1 1 2 2 2 2]
	// converged 3 6
}

// ExampleEngine_Update_holeFill closes a one-pixel hole in a 2-D mask.
func ExampleEngine_Update_holeFill() {
	labels, _ := volume.NewLabels(grid.Shape{4, 3})
	labels.Fill(1)
	labels.Set(0, 1, 1)

	e, _ := propagate.New(rule.NewMajorityVote(1, rule.DefaultMajorityThreshold))
	res, _ := e.Update(context.Background(), labels, nil)

	fmt.Println(labels.Count(0), res.State, res.Iterations)
	// Output:
	// 0 converged 1
}
