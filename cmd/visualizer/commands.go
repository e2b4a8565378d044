// cmd/visualizer/commands.go
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/logging"
	"go-astar-visualizer/internal/metrics"
	"go-astar-visualizer/pkg/gridmap"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	engine   *gridmap.Engine

	// Flags shared by every command.
	rowsFlag      int
	heuristicFlag string
	seedFlag      int64
	densityFlag   float64
	logLevelFlag  string
	logFormatFlag string

	// Window flags.
	widthFlag         int
	stepsPerFrameFlag int
	metricsAddrFlag   string

	// Solve flags.
	startFlag string
	endFlag   string

	rootCmd = &cobra.Command{
		Use:   "visualizer",
		Short: "Watch A* explore a grid",
		Long: `Opens a window with a square grid. Place a start and an end with the
left mouse button, paint barriers, then press space to watch the search.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runWindow,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Run one search without a window and print the board",
		Long: `Builds a board, scatters random barriers, searches from --start to --end
and prints the result as ASCII. Exits 0 when a path is found, 2 when none
exists and 1 on error.`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}
)

func init() {
	defaults := config.Defaults()

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&rowsFlag, "rows", defaults.Rows, "cells per side of the grid")
	pf.StringVar(&heuristicFlag, "heuristic", defaults.Heuristic,
		fmt.Sprintf("distance estimate (%s)", strings.Join(gridmap.HeuristicNames(), ", ")))
	pf.Int64Var(&seedFlag, "seed", defaults.Seed, "seed for random barriers, 0 picks one")
	pf.Float64Var(&densityFlag, "density", defaults.Density, "barrier probability for random scatter")
	pf.StringVar(&logLevelFlag, "log-level", defaults.LogLevel, "debug, info, warn or error")
	pf.StringVar(&logFormatFlag, "log-format", defaults.LogFormat, "text or json")

	f := rootCmd.Flags()
	f.IntVar(&widthFlag, "width", defaults.Width, "board width in pixels")
	f.IntVar(&stepsPerFrameFlag, "steps-per-frame", defaults.StepsPerFrame, "expansions shown per frame")
	f.StringVar(&metricsAddrFlag, "metrics-addr", defaults.MetricsAddr, "pprof and /metrics address, empty disables")

	solveCmd.Flags().StringVar(&startFlag, "start", "0,0", "start cell as row,col")
	solveCmd.Flags().StringVar(&endFlag, "end", "", "end cell as row,col (default: opposite corner)")

	rootCmd.AddCommand(solveCmd)
}

// setup loads the environment, lets explicit flags win, and builds the
// logger, metrics registry and engine every command shares.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadWith(func(c *config.Config) { applyFlags(cmd, c) })
	if err != nil {
		return err
	}

	logger, err = logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Format:  logging.Format(cfg.LogFormat),
		Service: "astar-visualizer",
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	heuristic, err := gridmap.HeuristicByName(cfg.Heuristic)
	if err != nil {
		return err
	}
	registry = prometheus.NewRegistry()
	engine = gridmap.NewEngine(
		gridmap.WithHeuristic(heuristic),
		gridmap.WithLogger(logger),
		gridmap.WithRecorder(metrics.NewRecorder(registry)),
	)
	logger.Debug("[CONFIG] loaded",
		"rows", cfg.Rows,
		"width", cfg.Width,
		"heuristic", cfg.Heuristic,
		"steps_per_frame", cfg.StepsPerFrame,
	)
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rows") {
		c.Rows = rowsFlag
	}
	if flags.Changed("heuristic") {
		c.Heuristic = heuristicFlag
	}
	if flags.Changed("seed") {
		c.Seed = seedFlag
	}
	if flags.Changed("density") {
		c.Density = densityFlag
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevelFlag
	}
	if flags.Changed("log-format") {
		c.LogFormat = logFormatFlag
	}
	if flags.Changed("width") {
		c.Width = widthFlag
	}
	if flags.Changed("steps-per-frame") {
		c.StepsPerFrame = stepsPerFrameFlag
	}
	if flags.Changed("metrics-addr") {
		c.MetricsAddr = metricsAddrFlag
	}
}
