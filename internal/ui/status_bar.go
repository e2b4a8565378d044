// internal/ui/status_bar.go
package ui

import (
	"image/color"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	statusTextOffsetX = 28
	statusTextOffsetY = 16
)

// StatusBar is the strip above the board showing the mode and the last
// search result.
type StatusBar struct {
	Width, Height int
	Background    color.RGBA
	TextColor     color.RGBA
	fontFace      font.Face
	mode          string
	detail        string
}

func NewStatusBar(width, height int, bg, fg color.RGBA) *StatusBar {
	return &StatusBar{
		Width:      width,
		Height:     height,
		Background: bg,
		TextColor:  fg,
		fontFace:   basicfont.Face7x13,
		mode:       "EDIT",
	}
}

// SetMode changes the left label, e.g. EDIT, SEARCH or PAUSED.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetDetail replaces the free text after the mode.
func (s *StatusBar) SetDetail(detail string) {
	s.detail = detail
}

// ShowResult formats a finished search.
func (s *StatusBar) ShowResult(res gridmap.Result) {
	s.detail = app.FormatResult(res)
}

// Text is the full line the bar draws.
func (s *StatusBar) Text() string {
	if s.detail == "" {
		return s.mode
	}
	return s.mode + "  " + s.detail
}

func (s *StatusBar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.Width), float32(s.Height), s.Background, false)
	text.Draw(screen, s.Text(), s.fontFace, statusTextOffsetX, statusTextOffsetY, s.TextColor)
}
