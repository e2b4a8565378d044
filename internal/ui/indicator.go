// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a small circle in the status bar whose color follows
// the search state. It pulses briefly whenever the state changes.
type StateIndicator struct {
	X, Y        float32
	Radius      float32
	Stroke      color.Color
	LastChanged time.Time
	current     color.RGBA
}

func NewStateIndicator(x, y, radius float32, stroke color.Color) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		Stroke: stroke,
	}
}

// SetColor switches the indicator color and restarts the pulse when it
// differs from the current one.
func (i *StateIndicator) SetColor(c color.RGBA) {
	if c == i.current {
		return
	}
	i.current = c
	i.LastChanged = time.Now()
}

// Scale is the pulse factor for the given time since the last change.
func Scale(elapsed time.Duration) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsed.Seconds()*8))
}

func (i *StateIndicator) Draw(screen *ebiten.Image) {
	r := i.Radius * Scale(time.Since(i.LastChanged))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.current, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, i.Stroke, true)
}
