package gridmap

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver keeps every callback so tests can assert on the
// sequence the engine produced.
type recordingObserver struct {
	opened  []Point
	closed  []Point
	trail   []Point
	steps   int
	reached int

	cancelAfter int
	cancel      context.CancelFunc
}

func (o *recordingObserver) OnNodeOpened(p Point) { o.opened = append(o.opened, p) }
func (o *recordingObserver) OnNodeClosed(p Point) { o.closed = append(o.closed, p) }
func (o *recordingObserver) OnPathCell(p Point)   { o.trail = append(o.trail, p) }
func (o *recordingObserver) OnGoalReached()       { o.reached++ }
func (o *recordingObserver) OnStepComplete() {
	o.steps++
	if o.cancel != nil && o.steps == o.cancelAfter {
		o.cancel()
	}
}

func mustGrid(t *testing.T, size int, barriers ...Point) *Grid {
	t.Helper()
	g, err := NewGrid(size)
	require.NoError(t, err)
	for _, b := range barriers {
		require.NoError(t, g.SetPassable(b, false))
	}
	return g
}

// bfsDistance is the brute-force reference for optimality checks.
func bfsDistance(g *Grid, start, end Point) int {
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return dist[cur]
		}
		for _, n := range g.Neighbors(cur) {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return -1
}

func assertValidPath(t *testing.T, g *Grid, path []Point, start, end Point) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	for i, p := range path {
		assert.True(t, g.IsPassable(p), "path cell %v is a barrier", p)
		if i == 0 {
			continue
		}
		assert.Equal(t, 1, Manhattan(path[i-1], p), "cells %v and %v are not adjacent", path[i-1], p)
		assert.Contains(t, g.Neighbors(path[i-1]), p)
	}
}

func TestRun_OpenGrid(t *testing.T) {
	g := mustGrid(t, 5)
	start, end := Point{0, 0}, Point{4, 4}
	obs := &recordingObserver{}

	res, err := NewEngine().Run(context.Background(), g, start, end, obs)
	require.NoError(t, err)

	assert.Equal(t, PathFound, res.Outcome)
	assert.Equal(t, 8, res.Length())
	assertValidPath(t, g, res.Path, start, end)
	assert.Equal(t, 1, obs.reached)
	assert.Len(t, obs.trail, 8)
	assert.Equal(t, start, obs.trail[len(obs.trail)-1])
	assert.NotContains(t, obs.closed, start)
}

func TestRun_DetoursThroughGap(t *testing.T) {
	// Column 2 is a wall except at row 4.
	g := mustGrid(t, 5, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2})
	start, end := Point{0, 0}, Point{4, 4}

	res, err := NewEngine().Run(context.Background(), g, start, end, nil)
	require.NoError(t, err)

	require.Equal(t, PathFound, res.Outcome)
	assertValidPath(t, g, res.Path, start, end)
	assert.Contains(t, res.Path, Point{4, 2})
	assert.Equal(t, bfsDistance(g, start, end), res.Length())
}

func TestRun_BoxedInStart(t *testing.T) {
	start := Point{2, 2}
	g := mustGrid(t, 5, Point{3, 2}, Point{1, 2}, Point{2, 3}, Point{2, 1})
	obs := &recordingObserver{}

	res, err := NewEngine().Run(context.Background(), g, start, Point{4, 4}, obs)
	require.NoError(t, err)

	assert.Equal(t, PathNotFound, res.Outcome)
	assert.Empty(t, res.Path)
	assert.Zero(t, obs.reached)
	assert.Empty(t, obs.opened)
	assert.Equal(t, 1, obs.steps)
}

func TestRun_DisconnectedRegions(t *testing.T) {
	// Full wall on column 2.
	g := mustGrid(t, 5, Point{0, 2}, Point{1, 2}, Point{2, 2}, Point{3, 2}, Point{4, 2})
	obs := &recordingObserver{}

	res, err := NewEngine().Run(context.Background(), g, Point{0, 0}, Point{4, 4}, obs)
	require.NoError(t, err)

	assert.Equal(t, PathNotFound, res.Outcome)
	assert.Zero(t, obs.reached)
	// Every reachable cell on the left side except start ends up closed.
	assert.Len(t, obs.closed, 9)
}

func TestRun_CancelledAtFirstCheckpoint(t *testing.T) {
	g := mustGrid(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	obs := &recordingObserver{}

	res, err := NewEngine().Run(ctx, g, Point{0, 0}, Point{4, 4}, obs)
	require.NoError(t, err)

	assert.Equal(t, Cancelled, res.Outcome)
	assert.Empty(t, obs.closed)
	assert.Zero(t, obs.steps)
	assert.Zero(t, res.Expanded)
}

func TestRun_CancelledMidRun(t *testing.T) {
	g := mustGrid(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	obs := &recordingObserver{cancelAfter: 3, cancel: cancel}

	res, err := NewEngine().Run(ctx, g, Point{0, 0}, Point{9, 9}, obs)
	require.NoError(t, err)

	assert.Equal(t, Cancelled, res.Outcome)
	assert.Equal(t, 3, obs.steps)
	assert.Equal(t, 3, res.Expanded)
	assert.Zero(t, obs.reached)
}

func TestRun_InvalidInput(t *testing.T) {
	g := mustGrid(t, 4, Point{1, 1})
	eng := NewEngine()
	tests := []struct {
		name       string
		grid       *Grid
		start, end Point
	}{
		{"nil grid", nil, Point{0, 0}, Point{1, 0}},
		{"start equals end", g, Point{2, 2}, Point{2, 2}},
		{"start outside", g, Point{-1, 0}, Point{2, 2}},
		{"end outside", g, Point{0, 0}, Point{4, 0}},
		{"start barrier", g, Point{1, 1}, Point{2, 2}},
		{"end barrier", g, Point{0, 0}, Point{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := &recordingObserver{}
			_, err := eng.Run(context.Background(), tt.grid, tt.start, tt.end, obs)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, obs.steps)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	g := mustGrid(t, 12)
	g.Scatter(rand.New(rand.NewSource(42)), 0.25, Point{0, 0}, Point{11, 11})
	eng := NewEngine()

	first, err := eng.Run(context.Background(), g, Point{0, 0}, Point{11, 11}, nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := eng.Run(context.Background(), g, Point{0, 0}, Point{11, 11}, nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRun_OptimalAgainstBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	eng := NewEngine()

	for trial := 0; trial < 200; trial++ {
		size := 3 + rng.Intn(6)
		g := mustGrid(t, size)
		start := Point{rng.Intn(size), rng.Intn(size)}
		end := Point{rng.Intn(size), rng.Intn(size)}
		if start == end {
			continue
		}
		g.Scatter(rng, 0.3, start, end)

		res, err := eng.Run(context.Background(), g, start, end, nil)
		require.NoError(t, err)

		want := bfsDistance(g, start, end)
		if want < 0 {
			assert.Equal(t, PathNotFound, res.Outcome, "trial %d\n%s", trial, g)
			continue
		}
		require.Equal(t, PathFound, res.Outcome, "trial %d\n%s", trial, g)
		assert.Equal(t, want, res.Length(), "trial %d\n%s", trial, g)
		assertValidPath(t, g, res.Path, start, end)
	}
}

// stateTracker follows each cell through the callbacks and fails the test
// when a cell is opened while open or closed without being open.
type stateTracker struct {
	NopObserver
	t     *testing.T
	state map[Point]CellState
}

func (s *stateTracker) OnNodeOpened(p Point) {
	assert.NotEqual(s.t, Open, s.state[p], "%v opened while already open", p)
	s.state[p] = Open
}

func (s *stateTracker) OnNodeClosed(p Point) {
	assert.Equal(s.t, Open, s.state[p], "%v closed without being open", p)
	s.state[p] = Closed
}

func TestRun_OpenAndClosedDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	eng := NewEngine()

	for trial := 0; trial < 100; trial++ {
		size := 4 + rng.Intn(10)
		start, end := Point{0, 0}, Point{size - 1, size - 1}
		g := mustGrid(t, size)
		g.Scatter(rng, 0.3, start, end)

		tracker := &stateTracker{t: t, state: map[Point]CellState{}}
		_, err := eng.Run(context.Background(), g, start, end, tracker)
		require.NoError(t, err)
		assert.NotContains(t, tracker.state, start)
	}
}

func TestRun_OpenCellKeepsPriority(t *testing.T) {
	// (2,0) is opened from (2,1) and then reached more cheaply from (3,0)
	// while still open. It keeps its first queue entry and is never expanded.
	g := mustGrid(t, 5, Point{1, 2}, Point{3, 1})
	start, end := Point{4, 1}, Point{0, 2}
	obs := &recordingObserver{}

	res, err := NewEngine().Run(context.Background(), g, start, end, obs)
	require.NoError(t, err)

	assert.Equal(t, []Point{
		{4, 2}, {3, 2}, {2, 2}, {4, 0}, {4, 3}, {3, 3}, {2, 3},
		{2, 1}, {3, 0}, {1, 3}, {1, 1}, {0, 3}, {0, 1},
	}, obs.closed)
	assert.Equal(t, []Point{
		{4, 1}, {4, 2}, {3, 2}, {2, 2}, {2, 3}, {1, 3}, {0, 3}, {0, 2},
	}, res.Path)
	assert.Equal(t, 15, res.Expanded)
}

func TestRun_PathFollowsInsertionOrder(t *testing.T) {
	g := mustGrid(t, 6,
		Point{0, 0}, Point{0, 4}, Point{1, 2}, Point{1, 4}, Point{2, 1},
		Point{3, 2}, Point{3, 4}, Point{4, 2}, Point{5, 4},
	)
	start, end := Point{3, 1}, Point{0, 5}
	obs := &recordingObserver{}

	res, err := NewEngine().Run(context.Background(), g, start, end, obs)
	require.NoError(t, err)

	assert.Equal(t, []Point{
		{3, 1}, {4, 1}, {5, 1}, {5, 2}, {5, 3}, {4, 3},
		{4, 4}, {4, 5}, {3, 5}, {2, 5}, {1, 5}, {0, 5},
	}, res.Path)
	assert.Len(t, obs.closed, 20)
	assert.Equal(t, 22, res.Expanded)
}

// referenceSearch is the plain textbook loop: a linear scan for the lowest
// (f, insertion) entry and at most one entry per open cell.
func referenceSearch(g *Grid, start, end Point) (closed, path []Point) {
	type entry struct {
		f, order int
		p        Point
	}
	gScore := map[Point]int{start: 0}
	cameFrom := map[Point]Point{}
	open := map[Point]bool{start: true}
	entries := []entry{{f: Manhattan(start, end), p: start}}
	count := 0
	score := func(p Point) int {
		if v, ok := gScore[p]; ok {
			return v
		}
		return infinity
	}

	for len(entries) > 0 {
		best := 0
		for i, e := range entries {
			b := entries[best]
			if e.f < b.f || (e.f == b.f && e.order < b.order) {
				best = i
			}
		}
		current := entries[best].p
		entries = append(entries[:best], entries[best+1:]...)
		delete(open, current)

		if current == end {
			return closed, Reconstruct(cameFrom, end)
		}
		for _, n := range g.Neighbors(current) {
			tentative := gScore[current] + 1
			if tentative >= score(n) {
				continue
			}
			cameFrom[n] = current
			gScore[n] = tentative
			if !open[n] {
				count++
				entries = append(entries, entry{f: tentative + Manhattan(n, end), order: count, p: n})
				open[n] = true
			}
		}
		if current != start {
			closed = append(closed, current)
		}
	}
	return closed, nil
}

func TestRun_MatchesReferenceSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	eng := NewEngine()

	for trial := 0; trial < 500; trial++ {
		size := 3 + rng.Intn(12)
		start := Point{rng.Intn(size), rng.Intn(size)}
		end := Point{rng.Intn(size), rng.Intn(size)}
		if start == end {
			continue
		}
		g := mustGrid(t, size)
		g.Scatter(rng, 0.3, start, end)

		obs := &recordingObserver{}
		res, err := eng.Run(context.Background(), g, start, end, obs)
		require.NoError(t, err)

		wantClosed, wantPath := referenceSearch(g, start, end)
		assert.Equal(t, wantClosed, obs.closed, "trial %d\n%s", trial, g)
		assert.Equal(t, wantPath, res.Path, "trial %d\n%s", trial, g)
	}
}

type fakeRecorder struct {
	outcome  Outcome
	expanded int
	length   int
	calls    int
}

func (f *fakeRecorder) ObserveRun(o Outcome, expanded, length int, _ time.Duration) {
	f.outcome, f.expanded, f.length = o, expanded, length
	f.calls++
}

func TestRun_RecordsMetrics(t *testing.T) {
	rec := &fakeRecorder{}
	eng := NewEngine(WithRecorder(rec), WithHeuristic(nil))

	res, err := eng.Run(context.Background(), mustGrid(t, 4), Point{0, 0}, Point{3, 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, PathFound, rec.outcome)
	assert.Equal(t, res.Expanded, rec.expanded)
	assert.Equal(t, 6, rec.length)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "found", PathFound.String())
	assert.Equal(t, "not_found", PathNotFound.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
