package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lesionfront/grid"
	"github.com/katalvlaran/lesionfront/phantom"
	"github.com/katalvlaran/lesionfront/propagate"
	"github.com/katalvlaran/lesionfront/raster"
)

func newCompeteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compete",
		Short: "Grow two corner seeds across an intensity ramp by region competition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompete(cmd)
		},
	}
}

func (a *app) runCompete(cmd *cobra.Command) error {
	p := a.cfg.Phantom
	shape := grid.Shape(p.Shape)
	img, err := phantom.Ramp(shape, p.RampAxis, p.RampLow, p.RampHigh)
	if err != nil {
		return err
	}
	if p.SmoothRadius > 0 {
		if img, err = raster.Smooth(img, p.SmoothRadius); err != nil {
			return err
		}
	}
	labels, err := phantom.CornerSeeds(shape, p.SeedSize, 1, 2)
	if err != nil {
		return err
	}

	opts, log := a.engineOptions()
	r := a.cfg.CompetitionRule()
	e, err := propagate.New(r, opts...)
	if err != nil {
		return err
	}
	res, err := e.Update(cmd.Context(), labels, img)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"seed_intensities": r.SeedIntensities(),
	}).Debug("competition seeds")

	hist := labels.Histogram()
	fmt.Fprintf(a.out, "state=%s iterations=%d changed=%d seeds=%d elapsed=%s\n",
		res.State, res.Iterations, res.TotalChanged, res.Seeds, res.Elapsed)
	fmt.Fprintf(a.out, "label 1: %d pixels\nlabel 2: %d pixels\nunlabeled: %d pixels\n",
		hist[1], hist[2], hist[a.cfg.Engine.Background])
	return a.printMetrics()
}
