package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// app carries the resolved settings into the subcommands.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	configPath string
	metrics    bool
	trace      bool
	flags      config.Config

	stopTracing func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Default()}

	root := &cobra.Command{
		Use:           "statespace",
		Short:         "Solve and map state-space search problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.stopTracing != nil {
				if err := a.stopTracing(cmd.Context()); err != nil {
					return err
				}
			}
			if !a.metrics {
				return nil
			}

			return telemetry.WriteMetrics(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.Problem, "problem", a.flags.Problem, "problem: waterjug, nqueens or tilepuzzle")
	pf.StringVar(&a.flags.Log.Level, "log-level", a.flags.Log.Level, "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.Log.Format, "log-format", a.flags.Log.Format, "log format: text or json")
	pf.BoolVar(&a.metrics, "metrics", false, "dump Prometheus metrics to stderr on exit")
	pf.BoolVar(&a.trace, "trace", false, "print OpenTelemetry spans to stderr")
	pf.IntVar(&a.flags.NQueens.N, "n", a.flags.NQueens.N, "nqueens board size")
	pf.StringVar(&a.flags.TilePuzzle.Initial, "tiles", a.flags.TilePuzzle.Initial, "tilepuzzle initial board, comma-separated")
	pf.StringVar(&a.flags.TilePuzzle.Heuristic, "heuristic", a.flags.TilePuzzle.Heuristic, "tilepuzzle heuristic: misplaced, misplaced-blank or manhattan")

	root.AddCommand(newSolveCmd(a), newGraphCmd(a), newCompareCmd(a))

	return root
}

// setup loads the config file, applies the flags that were set and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	override := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	override("problem", func() { cfg.Problem = a.flags.Problem })
	override("log-level", func() { cfg.Log.Level = a.flags.Log.Level })
	override("log-format", func() { cfg.Log.Format = a.flags.Log.Format })
	override("n", func() { cfg.NQueens.N = a.flags.NQueens.N })
	override("tiles", func() { cfg.TilePuzzle.Initial = a.flags.TilePuzzle.Initial })
	override("heuristic", func() { cfg.TilePuzzle.Heuristic = a.flags.TilePuzzle.Heuristic })
	override("strategy", func() { cfg.Strategy = a.flags.Strategy })
	override("max-expansions", func() { cfg.MaxExpansions = a.flags.MaxExpansions })
	override("max-depth", func() { cfg.MaxDepth = a.flags.MaxDepth })
	override("format", func() { cfg.Format = a.flags.Format })
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := telemetry.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := telemetry.NewLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	if a.trace {
		if a.stopTracing, err = telemetry.InitStdoutTracing(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	a.logger.Debug("statespace: configured",
		slog.String("command", cmd.Name()),
		slog.String("problem", cfg.Problem),
		slog.String("strategy", cfg.Strategy),
	)

	return nil
}
