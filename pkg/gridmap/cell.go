// pkg/gridmap/cell.go
package gridmap

import "fmt"

// Point is a lattice position and the identity key of a Cell.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// NeighborDirections lists the 4-directional offsets in the order
// neighbors are reported: down, up, right, left.
// The order fixes how ties between equal-cost paths are broken.
var NeighborDirections = []Point{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Cell is one position of the grid. Its position never changes after the
// grid is built; only the passable flag is edited.
//
// Cell deliberately has no ordering. Search containers order entries by an
// explicit insertion counter instead.
type Cell struct {
	pos      Point
	passable bool
}

// Position returns the row and column of the cell.
func (c *Cell) Position() Point {
	return c.pos
}

// IsPassable reports whether the cell may be traversed.
func (c *Cell) IsPassable() bool {
	return c.passable
}

// SetPassable toggles the barrier flag.
func (c *Cell) SetPassable(passable bool) {
	c.passable = passable
}
