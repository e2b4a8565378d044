// pkg/gridmap/engine.go
package gridmap

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidInput is returned when start and end cannot be searched:
// they are equal, outside the grid, or barriers.
var ErrInvalidInput = errors.New("invalid search input")

const infinity = math.MaxInt

// Outcome classifies how a run ended.
type Outcome int

const (
	PathFound Outcome = iota
	PathNotFound
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case PathFound:
		return "found"
	case PathNotFound:
		return "not_found"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is what Run reports back.
type Result struct {
	Outcome Outcome
	// Path runs from start to end inclusive. Empty unless Outcome is PathFound.
	Path []Point
	// Expanded counts popped cells that were processed, goal included.
	Expanded int
}

// Length is the number of edges in the path.
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Recorder receives one sample per finished run.
type Recorder interface {
	ObserveRun(outcome Outcome, expanded, pathLength int, elapsed time.Duration)
}

// Options configure an Engine.
type Options struct {
	Heuristic Heuristic
	Logger    *slog.Logger
	Recorder  Recorder
}

// Option modifies Options.
type Option func(*Options)

// WithHeuristic replaces the Manhattan default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithLogger sets the logger used for run start/finish records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder attaches a metrics sink.
func WithRecorder(r Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// Engine runs A* over a Grid. It keeps no state between runs and one
// Engine may serve many sequential searches.
type Engine struct {
	heuristic Heuristic
	logger    *slog.Logger
	recorder  Recorder
}

// NewEngine builds an engine with Manhattan distance unless overridden.
func NewEngine(opts ...Option) *Engine {
	o := Options{Heuristic: Manhattan}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Heuristic == nil {
		o.Heuristic = Manhattan
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{heuristic: o.Heuristic, logger: o.Logger, recorder: o.Recorder}
}

// CellState is the search status of a cell within one run.
type CellState int

const (
	Unvisited CellState = iota
	Open
	Closed
)

// searchState is allocated per Run and dropped when it returns.
type searchState struct {
	gScore   map[Point]int
	fScore   map[Point]int
	cameFrom map[Point]Point
	open     openQueue
	openSet  map[Point]struct{}
	closed   map[Point]struct{}
	counter  int
}

func newSearchState() *searchState {
	return &searchState{
		gScore:   make(map[Point]int),
		fScore:   make(map[Point]int),
		cameFrom: make(map[Point]Point),
		openSet:  make(map[Point]struct{}),
		closed:   make(map[Point]struct{}),
	}
}

func (s *searchState) g(p Point) int {
	if v, ok := s.gScore[p]; ok {
		return v
	}
	return infinity
}

func (s *searchState) state(p Point) CellState {
	if _, ok := s.openSet[p]; ok {
		return Open
	}
	if _, ok := s.closed[p]; ok {
		return Closed
	}
	return Unvisited
}

func (s *searchState) push(p Point, f int) {
	heap.Push(&s.open, queueItem{point: p, f: f, order: s.counter})
}

func validate(g *Grid, start, end Point) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidInput)
	case start == end:
		return fmt.Errorf("%w: start equals end %v", ErrInvalidInput, start)
	case !g.Contains(start):
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidInput, start, g.size, g.size)
	case !g.Contains(end):
		return fmt.Errorf("%w: end %v outside %dx%d grid", ErrInvalidInput, end, g.size, g.size)
	case !g.IsPassable(start):
		return fmt.Errorf("%w: start %v is a barrier", ErrInvalidInput, start)
	case !g.IsPassable(end):
		return fmt.Errorf("%w: end %v is a barrier", ErrInvalidInput, end)
	}
	return nil
}

// Run searches for a shortest 4-directional path from start to end.
//
// ctx is checked once per iteration before the next cell is popped; a
// cancelled context ends the run with Outcome Cancelled. PathNotFound and
// Cancelled are outcomes, not errors. The only error is ErrInvalidInput,
// returned before any search state is allocated.
//
// The caller must not edit barriers while Run is executing.
func (e *Engine) Run(ctx context.Context, g *Grid, start, end Point, obs StepObserver) (Result, error) {
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}
	if obs == nil {
		obs = NopObserver{}
	}

	began := time.Now()
	log := e.logger.With("run_id", uuid.NewString())
	log.Debug("search started", "start", start, "end", end, "size", g.size)

	adj := g.Adjacency()
	s := newSearchState()
	s.gScore[start] = 0
	s.fScore[start] = e.heuristic(start, end)
	s.push(start, s.fScore[start])
	s.openSet[start] = struct{}{}

	res := Result{Outcome: PathNotFound}
	for s.open.Len() > 0 {
		if ctx.Err() != nil {
			res.Outcome = Cancelled
			break
		}

		item := heap.Pop(&s.open).(queueItem)
		current := item.point
		// Each cell has at most one heap entry; anything not open is stale.
		if s.state(current) != Open {
			continue
		}
		delete(s.openSet, current)
		res.Expanded++

		if current == end {
			var trail []Point
			Trace(s.cameFrom, end, func(p Point) {
				trail = append(trail, p)
				obs.OnPathCell(p)
			})
			obs.OnGoalReached()
			res.Outcome = PathFound
			res.Path = orderPath(trail, end)
			break
		}

		for _, next := range adj.Of(current) {
			tentative := s.g(current) + 1
			if tentative >= s.g(next) {
				continue
			}
			s.cameFrom[next] = current
			s.gScore[next] = tentative
			s.fScore[next] = tentative + e.heuristic(next, end)
			// An open cell keeps its original entry and priority. A closed
			// cell reached more cheaply is opened again.
			if s.state(next) != Open {
				delete(s.closed, next)
				s.counter++
				s.push(next, s.fScore[next])
				s.openSet[next] = struct{}{}
				obs.OnNodeOpened(next)
			}
		}

		obs.OnStepComplete()

		if current != start {
			s.closed[current] = struct{}{}
			obs.OnNodeClosed(current)
		}
	}

	elapsed := time.Since(began)
	if e.recorder != nil {
		e.recorder.ObserveRun(res.Outcome, res.Expanded, res.Length(), elapsed)
	}
	log.Debug("search finished",
		"outcome", res.Outcome.String(),
		"expanded", res.Expanded,
		"path_length", res.Length(),
		"elapsed", elapsed,
	)
	return res, nil
}
