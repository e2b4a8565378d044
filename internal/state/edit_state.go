// internal/state/edit_state.go
package state

import (
	"fmt"

	"go-astar-visualizer/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EditState)(nil)

// EditState lets the user place start, end and barriers.
//
//	left mouse   place start, then end, then barriers (drag to paint)
//	right mouse  erase a cell
//	space        run the search
//	c            clear the board
//	r            scatter random barriers
//	f            change animation speed
type EditState struct {
	sm    *StateMachine
	scene *Scene
}

func NewEditState(sm *StateMachine, scene *Scene) *EditState {
	return &EditState{sm: sm, scene: scene}
}

func (s *EditState) Enter() {
	s.scene.StatusBar.SetMode("EDIT")
}

func (s *EditState) Update(deltaTime float64) {
	board := s.scene.Board
	s.scene.HandleSpeedInput()

	if p, ok := s.scene.HoveredCell(); ok {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			if err := board.Place(p); err != nil {
				s.scene.Logger.Warn("place rejected", "cell", p, "error", err)
			}
		} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			if err := board.Erase(p); err != nil {
				s.scene.Logger.Warn("erase rejected", "cell", p, "error", err)
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		board.Clear()
		s.scene.StatusBar.SetDetail("")
		s.scene.Indicator.SetColor(config.IdleIndicatorColor)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		placed := board.Scatter(s.scene.Rng, s.scene.Config.Density)
		s.scene.StatusBar.SetDetail(fmt.Sprintf("%d barriers (seed %d)", placed, s.scene.Rng.Seed()))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if board.Ready() {
			s.sm.SetState(NewSearchState(s.sm, s.scene))
			return
		}
		s.scene.StatusBar.SetDetail("place start and end first")
	}
}

func (s *EditState) Draw(screen *ebiten.Image) {
	if p, ok := s.scene.HoveredCell(); ok {
		s.scene.Draw(screen, &p)
		return
	}
	s.scene.Draw(screen, nil)
}

func (s *EditState) Exit() {}
