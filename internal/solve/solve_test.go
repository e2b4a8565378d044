package solve

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go-astar-visualizer/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("3,4")
	require.NoError(t, err)
	assert.Equal(t, gridmap.Point{Row: 3, Col: 4}, p)

	p, err = ParsePoint(" 10 , 0 ")
	require.NoError(t, err)
	assert.Equal(t, gridmap.Point{Row: 10, Col: 0}, p)

	for _, in := range []string{"", "3", "3,4,5", "a,1", "1,b"} {
		_, err := ParsePoint(in)
		assert.ErrorIs(t, err, ErrInvalidPoint, "input %q", in)
	}
}

func TestRun_OpenBoard(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Rows:  5,
		Seed:  1,
		Start: gridmap.Point{Row: 0, Col: 0},
		End:   gridmap.Point{Row: 4, Col: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, gridmap.PathFound, rep.Result.Outcome)
	assert.Equal(t, 8, rep.Result.Length())
	assert.Equal(t, int64(1), rep.Seed)

	lines := strings.Split(strings.TrimRight(rep.Board, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('E'), lines[4][4])
	assert.Equal(t, 7, strings.Count(rep.Board, "*"))
	assert.Equal(t, ExitFound, ExitCode(rep, nil))
}

func TestRun_ScatterKeepsEndpoints(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Rows:    20,
		Seed:    42,
		Density: 0.3,
		Start:   gridmap.Point{Row: 0, Col: 0},
		End:     gridmap.Point{Row: 19, Col: 19},
	})
	require.NoError(t, err)
	assert.Contains(t, rep.Board, "#")
	assert.Equal(t, 1, strings.Count(rep.Board, "S"))
	assert.Equal(t, 1, strings.Count(rep.Board, "E"))
	assert.Contains(t, []gridmap.Outcome{gridmap.PathFound, gridmap.PathNotFound}, rep.Result.Outcome)

	again, err := Run(context.Background(), Options{
		Rows:    20,
		Seed:    42,
		Density: 0.3,
		Start:   gridmap.Point{Row: 0, Col: 0},
		End:     gridmap.Point{Row: 19, Col: 19},
	})
	require.NoError(t, err)
	assert.Equal(t, rep.Board, again.Board)
}

func TestRun_NoPath(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Rows:    6,
		Seed:    7,
		Density: 1,
		Start:   gridmap.Point{Row: 0, Col: 0},
		End:     gridmap.Point{Row: 5, Col: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, gridmap.PathNotFound, rep.Result.Outcome)
	assert.Equal(t, 1, rep.Result.Expanded)
	assert.Equal(t, ExitNotFound, ExitCode(rep, nil))
}

func TestRun_Invalid(t *testing.T) {
	ctx := context.Background()

	_, err := Run(ctx, Options{Rows: 0})
	assert.Error(t, err)

	_, err = Run(ctx, Options{Rows: 5, Start: gridmap.Point{Row: 9, Col: 0}, End: gridmap.Point{Row: 1, Col: 1}})
	assert.ErrorIs(t, err, gridmap.ErrOutOfBounds)

	rep, err := Run(ctx, Options{Rows: 5, Start: gridmap.Point{Row: 1, Col: 1}, End: gridmap.Point{Row: 1, Col: 1}})
	assert.ErrorIs(t, err, gridmap.ErrInvalidInput)
	assert.Equal(t, ExitError, ExitCode(rep, err))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := Run(ctx, Options{
		Rows:  5,
		Start: gridmap.Point{Row: 0, Col: 0},
		End:   gridmap.Point{Row: 4, Col: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, gridmap.Cancelled, rep.Result.Outcome)
	assert.Equal(t, ExitError, ExitCode(rep, nil))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	rep := Report{
		Result: gridmap.Result{Outcome: gridmap.PathNotFound, Expanded: 3},
		Seed:   9,
		Board:  "S#\n#E\n",
	}
	require.NoError(t, Write(&buf, rep))
	assert.Equal(t, "S#\n#E\nno path: 3 expanded (seed 9)\n", buf.String())
}
