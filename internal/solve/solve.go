// Package solve runs a single search without a window and prints the
// board as ASCII.
package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/gridmap"
)

var ErrInvalidPoint = errors.New("invalid point")

// Exit codes of the solve command.
const (
	ExitFound    = 0
	ExitError    = 1
	ExitNotFound = 2
)

// Options describe one headless run.
type Options struct {
	Rows    int
	Seed    int64
	Density float64
	Start   gridmap.Point
	End     gridmap.Point
	Engine  *gridmap.Engine
	Logger  *slog.Logger
}

// Report is what a run produced.
type Report struct {
	Result gridmap.Result
	Seed   int64
	Board  string
}

// ParsePoint reads "row,col".
func ParsePoint(s string) (gridmap.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridmap.Point{}, fmt.Errorf("%w: %q, want row,col", ErrInvalidPoint, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridmap.Point{}, fmt.Errorf("%w: %q: %v", ErrInvalidPoint, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridmap.Point{}, fmt.Errorf("%w: %q: %v", ErrInvalidPoint, s, err)
	}
	return gridmap.Point{Row: row, Col: col}, nil
}

// Run builds a board, scatters barriers around start and end, and searches
// it to completion.
func Run(ctx context.Context, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	engine := opts.Engine
	if engine == nil {
		engine = gridmap.NewEngine(gridmap.WithLogger(logger))
	}

	board, err := app.NewBoard(opts.Rows, engine, event.NewDispatcher(), logger)
	if err != nil {
		return Report{}, err
	}
	if err := board.Place(opts.Start); err != nil {
		return Report{}, fmt.Errorf("start: %w", err)
	}
	if opts.End == opts.Start {
		return Report{}, fmt.Errorf("%w: start and end are both %v", gridmap.ErrInvalidInput, opts.Start)
	}
	if err := board.Place(opts.End); err != nil {
		return Report{}, fmt.Errorf("end: %w", err)
	}

	rng := utils.NewPRNGService(opts.Seed)
	if opts.Density > 0 {
		board.Scatter(rng, opts.Density)
	}

	res, err := board.Search(ctx, nil)
	if err != nil {
		return Report{}, err
	}
	return Report{Result: res, Seed: rng.Seed(), Board: Draw(board)}, nil
}

// Draw renders the board with S and E for the endpoints and * for the path.
func Draw(board *app.Board) string {
	overlay := make(map[gridmap.Point]rune)
	size := board.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := gridmap.Point{Row: r, Col: c}
			switch board.Mark(p) {
			case app.Start:
				overlay[p] = 'S'
			case app.End:
				overlay[p] = 'E'
			case app.Path:
				overlay[p] = '*'
			}
		}
	}
	return board.Grid().Render(overlay)
}

// Write prints the board followed by a summary line.
func Write(w io.Writer, rep Report) error {
	if _, err := io.WriteString(w, rep.Board); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s (seed %d)\n", app.FormatResult(rep.Result), rep.Seed)
	return err
}

// ExitCode maps a run to the process exit status.
func ExitCode(rep Report, err error) int {
	switch {
	case err != nil:
		return ExitError
	case rep.Result.Outcome == gridmap.PathFound:
		return ExitFound
	case rep.Result.Outcome == gridmap.PathNotFound:
		return ExitNotFound
	default:
		return ExitError
	}
}
