// pkg/gridmap/grid.go
package gridmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize = errors.New("grid size must be positive")
	ErrOutOfBounds = errors.New("point is outside the grid")
)

// Randomizer is the subset of a seeded PRNG the grid needs for scattering
// barriers.
type Randomizer interface {
	Float64() float64
}

// Grid is a square lattice of Cells. Its shape is fixed at construction;
// only passability changes.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid builds a size x size grid with every cell passable.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
		for c := range cells[r] {
			cells[r][c] = Cell{pos: Point{Row: r, Col: c}, passable: true}
		}
	}
	return &Grid{size: size, cells: cells}, nil
}

// Size returns N for an N x N grid.
func (g *Grid) Size() int {
	return g.size
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Cell returns the cell at p or nil when p is out of bounds.
func (g *Grid) Cell(p Point) *Cell {
	if !g.Contains(p) {
		return nil
	}
	return &g.cells[p.Row][p.Col]
}

// IsPassable reports whether p is inside the grid and not a barrier.
func (g *Grid) IsPassable(p Point) bool {
	c := g.Cell(p)
	return c != nil && c.passable
}

// SetPassable edits the barrier flag of the cell at p.
func (g *Grid) SetPassable(p Point, passable bool) error {
	c := g.Cell(p)
	if c == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	c.SetPassable(passable)
	return nil
}

// Reset makes every cell passable again.
func (g *Grid) Reset() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].passable = true
		}
	}
}

// Barriers lists impassable cells in row-major order.
func (g *Grid) Barriers() []Point {
	var out []Point
	for r := range g.cells {
		for c := range g.cells[r] {
			if !g.cells[r][c].passable {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// Scatter turns each cell into a barrier with the given probability.
// Cells listed in keep are left untouched. Existing barriers stay.
func (g *Grid) Scatter(rng Randomizer, density float64, keep ...Point) int {
	skip := make(map[Point]struct{}, len(keep))
	for _, p := range keep {
		skip[p] = struct{}{}
	}
	placed := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			if _, ok := skip[cell.pos]; ok || !cell.passable {
				continue
			}
			if rng.Float64() < density {
				cell.passable = false
				placed++
			}
		}
	}
	return placed
}

// Neighbors returns the in-bounds passable cells adjacent to p, in the
// order down, up, right, left.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		n := p.Add(d)
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Adjacency is a snapshot of every cell's neighbor list taken at one
// instant. Later barrier edits do not affect it.
type Adjacency struct {
	size  int
	lists [][]Point
}

// Adjacency refreshes neighbor lists for all cells from the current
// passability.
func (g *Grid) Adjacency() *Adjacency {
	lists := make([][]Point, g.size*g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			lists[r*g.size+c] = g.Neighbors(Point{Row: r, Col: c})
		}
	}
	return &Adjacency{size: g.size, lists: lists}
}

// Of returns the snapshot neighbors of p.
func (a *Adjacency) Of(p Point) []Point {
	if p.Row < 0 || p.Row >= a.size || p.Col < 0 || p.Col >= a.size {
		return nil
	}
	return a.lists[p.Row*a.size+p.Col]
}

// String draws the grid with '.' for passable cells and '#' for barriers.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid like String, overlaying runes for selected points.
func (g *Grid) Render(overlay map[Point]rune) string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for r := range g.cells {
		for c := range g.cells[r] {
			p := Point{Row: r, Col: c}
			if ch, ok := overlay[p]; ok {
				sb.WriteRune(ch)
				continue
			}
			if g.cells[r][c].passable {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
