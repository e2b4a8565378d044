// cmd/visualizer/solve.go
package main

import (
	"go-astar-visualizer/internal/solve"
	"go-astar-visualizer/pkg/gridmap"

	"github.com/spf13/cobra"
)

func runSolve(cmd *cobra.Command, args []string) error {
	start, err := solve.ParsePoint(startFlag)
	if err != nil {
		return err
	}
	end := gridmap.Point{Row: cfg.Rows - 1, Col: cfg.Rows - 1}
	if endFlag != "" {
		if end, err = solve.ParsePoint(endFlag); err != nil {
			return err
		}
	}

	rep, err := solve.Run(cmd.Context(), solve.Options{
		Rows:    cfg.Rows,
		Seed:    cfg.Seed,
		Density: cfg.Density,
		Start:   start,
		End:     end,
		Engine:  engine,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	if err := solve.Write(cmd.OutOrStdout(), rep); err != nil {
		return err
	}
	exitCode = solve.ExitCode(rep, nil)
	return nil
}
