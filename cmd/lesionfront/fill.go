package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lesionfront/components"
	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/phantom"
	"github.com/katalvlaran/lesionfront/propagate"
)

func newFillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "Close the holes punched into a sphere by majority vote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runFill(cmd)
		},
	}
}

func (a *app) runFill(cmd *cobra.Command) error {
	p := a.cfg.Phantom
	shape := grid.Shape(p.Shape)
	fg, bg := a.cfg.HoleFill.Foreground, a.cfg.Engine.Background
	conn := grid.ConnFull
	if a.cfg.Engine.Connectivity == grid.ConnFace.String() {
		conn = grid.ConnFace
	}

	labels, err := phantom.Sphere(shape, phantom.Centre(shape), p.SphereRadius, fg)
	if err != nil {
		return err
	}
	if bg != 0 {
		for i, l := range labels.Pix {
			if l == 0 {
				labels.Pix[i] = bg
			}
		}
	}
	punched := phantom.Punch(labels, fg, bg, p.PunchStride)
	holesBefore, err := components.Find(labels, bg, conn)
	if err != nil {
		return err
	}

	opts, _ := a.engineOptions()
	e, err := propagate.New(a.cfg.HoleFillRule(), opts...)
	if err != nil {
		return err
	}
	res, err := e.Update(cmd.Context(), labels, nil)
	if err != nil {
		return err
	}
	holesAfter, err := components.Find(labels, bg, conn)
	if err != nil {
		return err
	}
	lesions, err := components.Find(labels, fg, conn)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "state=%s iterations=%d changed=%d seeds=%d elapsed=%s\n",
		res.State, res.Iterations, res.TotalChanged, res.Seeds, res.Elapsed)
	fmt.Fprintf(a.out, "punched=%d background regions: %d -> %d\n",
		punched, len(holesBefore), len(holesAfter))
	components.SortBySize(lesions)
	for i, c := range lesions {
		fmt.Fprintf(a.out, "component %d: %d pixels, bounds %v..%v\n", i+1, c.Size(), c.Min, c.Max)
	}
	return a.printMetrics()
}
