// pkg/render/grid_renderer.go
package render

import (
	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MarkSource is what the renderer needs from a board.
type MarkSource interface {
	Size() int
	Mark(p gridmap.Point) app.Mark
}

// GridRenderer draws a board as filled squares with grid lines on top.
type GridRenderer struct {
	layout    utils.Layout
	palette   Palette
	linesImg  *ebiten.Image // pre-rendered grid lines, transparent elsewhere
	boardSize int
}

func NewGridRenderer(layout utils.Layout, palette Palette) *GridRenderer {
	r := &GridRenderer{
		layout:    layout,
		palette:   palette,
		boardSize: layout.CellSize() * layout.Rows,
	}
	r.renderLines()
	return r
}

// Layout returns the pixel layout used for drawing and hit testing.
func (r *GridRenderer) Layout() utils.Layout {
	return r.layout
}

// renderLines draws the static lattice once.
func (r *GridRenderer) renderLines() {
	r.linesImg = ebiten.NewImage(r.boardSize+1, r.boardSize+1)
	size := float32(r.layout.CellSize())
	total := float32(r.boardSize)
	for i := 0; i <= r.layout.Rows; i++ {
		pos := float32(i) * size
		vector.StrokeLine(r.linesImg, 0, pos, total, pos, r.palette.LineWidth, r.palette.GridLine, false)
		vector.StrokeLine(r.linesImg, pos, 0, pos, total, r.palette.LineWidth, r.palette.GridLine, false)
	}
}

// Draw paints every cell of src, highlights hover if set, then overlays the
// grid lines.
func (r *GridRenderer) Draw(screen *ebiten.Image, src MarkSource, hover *gridmap.Point) {
	ox, oy := float32(r.layout.OffsetX), float32(r.layout.OffsetY)
	vector.DrawFilledRect(screen, ox, oy, float32(r.boardSize), float32(r.boardSize), r.palette.Background, false)

	size := float32(r.layout.CellSize())
	n := src.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			p := gridmap.Point{Row: row, Col: col}
			mark := src.Mark(p)
			if mark == app.Empty && (hover == nil || *hover != p) {
				continue
			}
			fill := r.palette.ColorOf(mark)
			if hover != nil && *hover == p {
				fill = DarkenColor(fill)
			}
			x, y := r.layout.CellToScreen(p)
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, fill, false)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(r.linesImg, op)
}
