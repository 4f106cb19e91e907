package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lesionfront/config"
	"github.com/katalvlaran/lesionfront/metrics"
	"github.com/katalvlaran/lesionfront/propagate"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	out io.Writer

	configPath  string
	debug       bool
	workers     int
	showMetrics bool

	cfg       config.Config
	log       *logrus.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "lesionfront",
		Short:         "Front-propagation labeling on synthetic volumes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&a.debug, "debug", false, "log every iteration as text")
	flags.IntVarP(&a.workers, "workers", "w", -1, "evaluate-phase goroutines, 0 for GOMAXPROCS (overrides config)")
	flags.BoolVar(&a.showMetrics, "metrics", false, "print Prometheus metrics after the run")

	root.AddCommand(newCompeteCmd(a), newFillCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("workers") {
		if a.workers < 0 {
			return fmt.Errorf("--workers must be >= 0, got %d", a.workers)
		}
		a.cfg.Engine.Workers = a.workers
	}

	a.log = initLogger(a.debug, cmd.ErrOrStderr())
	a.registry = prometheus.NewRegistry()
	a.collector = metrics.New(a.registry)
	return nil
}

// engineOptions returns the configured options plus logging and metrics,
// tagged with a fresh run id.
func (a *app) engineOptions() ([]propagate.Option, *logrus.Entry) {
	entry := a.log.WithField("run_id", uuid.NewString())
	opts := append(a.cfg.EngineOptions(),
		propagate.WithLogger(entry),
		propagate.WithObserver(a.collector),
	)
	return opts, entry
}

func (a *app) printMetrics() error {
	if !a.showMetrics {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(a.out)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// initLogger returns a text logger at debug level, or a JSON logger at info.
func initLogger(debug bool, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	return logger
}
