// internal/utils/coords.go
package utils

import (
	"go-astar-visualizer/pkg/gridmap"
)

// Layout maps between screen pixels and grid cells. The board occupies a
// square of Width pixels at (OffsetX, OffsetY) split into Rows cells per
// side.
type Layout struct {
	Rows    int
	Width   int
	OffsetX int
	OffsetY int
}

// CellSize is the side of one cell in pixels.
func (l Layout) CellSize() int {
	if l.Rows <= 0 {
		return 0
	}
	return l.Width / l.Rows
}

// CellToScreen returns the top-left pixel of p.
func (l Layout) CellToScreen(p gridmap.Point) (x, y float64) {
	size := l.CellSize()
	return float64(l.OffsetX + p.Col*size), float64(l.OffsetY + p.Row*size)
}

// ScreenToCell converts a cursor position into a cell. ok is false when
// the position is outside the board.
func (l Layout) ScreenToCell(x, y int) (p gridmap.Point, ok bool) {
	size := l.CellSize()
	if size == 0 {
		return gridmap.Point{}, false
	}
	lx, ly := x-l.OffsetX, y-l.OffsetY
	if lx < 0 || ly < 0 {
		return gridmap.Point{}, false
	}
	p = gridmap.Point{Row: ly / size, Col: lx / size}
	if p.Row >= l.Rows || p.Col >= l.Rows {
		return gridmap.Point{}, false
	}
	return p, true
}
