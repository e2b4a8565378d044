// internal/app/board.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/pkg/gridmap"
)

var ErrNotReady = errors.New("start and end must both be placed")

// Mark is what a cell currently shows. It is derived from the grid, the
// start/end selection and the last search; renderers map it to colors.
type Mark int

const (
	Empty Mark = iota
	Barrier
	Start
	End
	Open
	Closed
	Path
)

func (m Mark) String() string {
	switch m {
	case Empty:
		return "empty"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Board is the editing session around one grid: barrier edits, start and
// end selection, and the marks left by the last search.
type Board struct {
	grid       *gridmap.Grid
	engine     *gridmap.Engine
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	overlay    map[gridmap.Point]Mark
	start, end *gridmap.Point
	last       *gridmap.Result
}

// NewBoard creates an empty rows x rows board. The board subscribes itself
// to search events on dispatcher to keep its marks current.
func NewBoard(rows int, engine *gridmap.Engine, dispatcher *event.Dispatcher, logger *slog.Logger) (*Board, error) {
	grid, err := gridmap.NewGrid(rows)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Board{
		grid:       grid,
		engine:     engine,
		dispatcher: dispatcher,
		logger:     logger,
		overlay:    make(map[gridmap.Point]Mark),
	}
	dispatcher.SubscribeAll(b, event.NodeOpened, event.NodeClosed, event.PathCell, event.SearchFinished)
	return b, nil
}

// Grid exposes the underlying grid.
func (b *Board) Grid() *gridmap.Grid {
	return b.grid
}

// Size returns the number of cells per side.
func (b *Board) Size() int {
	return b.grid.Size()
}

// Start returns the start cell if one is placed.
func (b *Board) Start() (gridmap.Point, bool) {
	if b.start == nil {
		return gridmap.Point{}, false
	}
	return *b.start, true
}

// End returns the end cell if one is placed.
func (b *Board) End() (gridmap.Point, bool) {
	if b.end == nil {
		return gridmap.Point{}, false
	}
	return *b.end, true
}

// Ready reports whether a search can run.
func (b *Board) Ready() bool {
	return b.start != nil && b.end != nil
}

// LastResult returns the outcome of the most recent finished search.
func (b *Board) LastResult() (gridmap.Result, bool) {
	if b.last == nil {
		return gridmap.Result{}, false
	}
	return *b.last, true
}

func (b *Board) isStart(p gridmap.Point) bool { return b.start != nil && *b.start == p }
func (b *Board) isEnd(p gridmap.Point) bool   { return b.end != nil && *b.end == p }

// Mark returns what p shows.
func (b *Board) Mark(p gridmap.Point) Mark {
	switch {
	case b.isStart(p):
		return Start
	case b.isEnd(p):
		return End
	case !b.grid.IsPassable(p):
		return Barrier
	}
	if m, ok := b.overlay[p]; ok {
		return m
	}
	return Empty
}

// Place applies a primary click: the first click places start, the next
// places end, and later clicks raise barriers. Start and end are never
// overwritten by a barrier.
func (b *Board) Place(p gridmap.Point) error {
	if !b.grid.Contains(p) {
		return fmt.Errorf("%w: %v", gridmap.ErrOutOfBounds, p)
	}
	switch {
	case b.start == nil && !b.isEnd(p):
		if err := b.grid.SetPassable(p, true); err != nil {
			return err
		}
		b.start = &p
		delete(b.overlay, p)
		b.dispatcher.Dispatch(event.Event{Type: event.StartPlaced, Data: p})
	case b.end == nil && !b.isStart(p):
		if err := b.grid.SetPassable(p, true); err != nil {
			return err
		}
		b.end = &p
		delete(b.overlay, p)
		b.dispatcher.Dispatch(event.Event{Type: event.EndPlaced, Data: p})
	case !b.isStart(p) && !b.isEnd(p):
		if !b.grid.IsPassable(p) {
			return nil
		}
		if err := b.grid.SetPassable(p, false); err != nil {
			return err
		}
		delete(b.overlay, p)
		b.dispatcher.Dispatch(event.Event{Type: event.BarrierToggled, Data: p})
	}
	return nil
}

// Erase applies a secondary click: the cell becomes empty and passable and
// loses its start or end role.
func (b *Board) Erase(p gridmap.Point) error {
	if err := b.grid.SetPassable(p, true); err != nil {
		return err
	}
	if b.isStart(p) {
		b.start = nil
	}
	if b.isEnd(p) {
		b.end = nil
	}
	delete(b.overlay, p)
	b.dispatcher.Dispatch(event.Event{Type: event.CellCleared, Data: p})
	return nil
}

// Clear replaces the grid with a fresh one and forgets start, end and
// search marks.
func (b *Board) Clear() {
	grid, err := gridmap.NewGrid(b.grid.Size())
	if err != nil {
		// Size was validated when the board was built.
		panic(err)
	}
	b.grid = grid
	b.start, b.end, b.last = nil, nil, nil
	b.ClearSearch()
	b.dispatcher.Dispatch(event.Event{Type: event.GridReset})
	b.logger.Info("board cleared", "rows", grid.Size())
}

// ClearSearch drops open, closed and path marks.
func (b *Board) ClearSearch() {
	b.overlay = make(map[gridmap.Point]Mark)
}

// Scatter raises random barriers, leaving start and end passable.
func (b *Board) Scatter(rng gridmap.Randomizer, density float64) int {
	var keep []gridmap.Point
	if b.start != nil {
		keep = append(keep, *b.start)
	}
	if b.end != nil {
		keep = append(keep, *b.end)
	}
	placed := b.grid.Scatter(rng, density, keep...)
	b.ClearSearch()
	b.logger.Info("barriers scattered", "placed", placed, "density", density)
	return placed
}

// Search runs the engine from start to end. Search events reach the
// dispatcher and observer, in that order, for every step.
func (b *Board) Search(ctx context.Context, observer gridmap.StepObserver) (gridmap.Result, error) {
	if !b.Ready() {
		return gridmap.Result{}, ErrNotReady
	}
	b.ClearSearch()
	b.last = nil
	b.dispatcher.Dispatch(event.Event{Type: event.SearchStarted})

	res, err := b.engine.Run(ctx, b.grid, *b.start, *b.end,
		gridmap.Observers(event.NewObserver(b.dispatcher), observer))
	if err != nil {
		b.logger.Warn("search rejected", "error", err)
		return gridmap.Result{}, err
	}
	b.dispatcher.Dispatch(event.Event{Type: event.SearchFinished, Data: res})
	b.logger.Info("search finished",
		"outcome", res.Outcome.String(),
		"expanded", res.Expanded,
		"path_length", res.Length(),
	)
	return res, nil
}

// OnEvent keeps search marks in sync with engine progress.
func (b *Board) OnEvent(e event.Event) {
	switch e.Type {
	case event.NodeOpened:
		b.overlay[e.Data.(gridmap.Point)] = Open
	case event.NodeClosed:
		b.overlay[e.Data.(gridmap.Point)] = Closed
	case event.PathCell:
		b.overlay[e.Data.(gridmap.Point)] = Path
	case event.SearchFinished:
		res := e.Data.(gridmap.Result)
		b.last = &res
	}
}
