// internal/state/search_state.go
package state

import (
	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*SearchState)(nil)

// SearchState animates a search, releasing the speed button's number of
// expansions per frame. Escape cancels, P pauses, F changes speed.
type SearchState struct {
	sm     *StateMachine
	scene  *Scene
	runner *app.Runner
}

func NewSearchState(sm *StateMachine, scene *Scene) *SearchState {
	return &SearchState{sm: sm, scene: scene}
}

// Enter starts the runner on first entry. Returning from pause re-enters
// with the runner already in place.
func (s *SearchState) Enter() {
	s.scene.StatusBar.SetMode("SEARCH")
	s.scene.Indicator.SetColor(config.RunningIndicatorColor)
	if s.runner != nil {
		return
	}
	runner, err := s.scene.Board.NewRunner(s.scene.Ctx)
	if err != nil {
		s.scene.Logger.Warn("search not started", "error", err)
		s.scene.StatusBar.SetDetail(err.Error())
		s.sm.SetState(NewEditState(s.sm, s.scene))
		return
	}
	s.runner = runner
	s.scene.StatusBar.SetDetail("")
}

func (s *SearchState) Update(deltaTime float64) {
	if s.runner == nil {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.runner.Cancel()
		s.finish()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.sm.SetState(NewPauseState(s.sm, s, s.scene))
		return
	}

	s.scene.HandleSpeedInput()
	if s.runner.Advance(s.scene.Speed.Steps()) {
		s.finish()
	}
}

// finish reports the runner's result and returns to editing.
func (s *SearchState) finish() {
	res, err := s.runner.Result()
	if err != nil {
		s.scene.StatusBar.SetDetail(err.Error())
	} else {
		s.scene.ShowResult(res)
	}
	s.scene.Logger.Debug("search animation ended", "outcome", res.Outcome, "steps", s.runner.Steps())
	s.sm.SetState(NewEditState(s.sm, s.scene))
}

func (s *SearchState) Draw(screen *ebiten.Image) {
	s.scene.Draw(screen, nil)
}

func (s *SearchState) Exit() {}

// Runner exposes the running search, mainly to the pause state.
func (s *SearchState) Runner() *app.Runner {
	return s.runner
}
