// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-astar-visualizer/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

var pauseOverlayColor = color.RGBA{0, 0, 0, 96}

// PauseState freezes a running search. P resumes, N advances a single
// step, Escape cancels.
type PauseState struct {
	sm       *StateMachine
	previous *SearchState
	scene    *Scene
}

func NewPauseState(sm *StateMachine, prev *SearchState, scene *Scene) *PauseState {
	return &PauseState{sm: sm, previous: prev, scene: scene}
}

func (s *PauseState) Enter() {
	s.scene.StatusBar.SetMode("PAUSED")
	s.scene.Indicator.SetColor(config.PausedIndicatorColor)
}

func (s *PauseState) Update(deltaTime float64) {
	runner := s.previous.Runner()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.sm.SetState(s.previous)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if runner.Advance(1) {
			s.previous.finish()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		runner.Cancel()
		s.previous.finish()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	w, h := s.scene.ScreenSize()
	vector.DrawFilledRect(screen, 0, float32(config.StatusBarHeight), float32(w), float32(h-config.StatusBarHeight), pauseOverlayColor, false)
}

func (s *PauseState) Exit() {}
