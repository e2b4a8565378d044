// pkg/render/color.go
package render

import (
	"image/color"

	"go-astar-visualizer/internal/app"
)

// Palette maps board marks to colors. The board never stores colors; the
// renderer derives them from marks on every frame.
type Palette struct {
	Background color.RGBA
	GridLine   color.RGBA
	Barrier    color.RGBA
	Start      color.RGBA
	End        color.RGBA
	Open       color.RGBA
	Closed     color.RGBA
	Path       color.RGBA
	LineWidth  float32
}

// ColorOf returns the fill color for m.
func (p Palette) ColorOf(m app.Mark) color.RGBA {
	switch m {
	case app.Barrier:
		return p.Barrier
	case app.Start:
		return p.Start
	case app.End:
		return p.End
	case app.Open:
		return p.Open
	case app.Closed:
		return p.Closed
	case app.Path:
		return p.Path
	default:
		return p.Background
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
