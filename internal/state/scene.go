// internal/state/scene.go
package state

import (
	"context"
	"log/slog"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/ui"
	"go-astar-visualizer/internal/utils"
	"go-astar-visualizer/pkg/gridmap"
	"go-astar-visualizer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scene is everything the states share: the board, its renderer and the
// status widgets.
type Scene struct {
	Ctx       context.Context
	Config    config.Config
	Board     *app.Board
	Renderer  *render.GridRenderer
	StatusBar *ui.StatusBar
	Indicator *ui.StateIndicator
	Speed     *ui.SpeedButton
	Rng       *utils.PRNGService
	Logger    *slog.Logger
}

// NewScene wires the renderer and widgets for board using cfg geometry.
func NewScene(ctx context.Context, cfg config.Config, board *app.Board, logger *slog.Logger) *Scene {
	layout := utils.Layout{
		Rows:    cfg.Rows,
		Width:   cfg.BoardWidth(),
		OffsetY: config.StatusBarHeight,
	}
	palette := render.Palette{
		Background: config.BackgroundColor,
		GridLine:   config.GridLineColor,
		Barrier:    config.BarrierColor,
		Start:      config.StartColor,
		End:        config.EndColor,
		Open:       config.OpenColor,
		Closed:     config.ClosedColor,
		Path:       config.PathColor,
		LineWidth:  config.GridLineWidth,
	}
	indicator := ui.NewStateIndicator(
		float32(config.IndicatorOffsetX),
		float32(config.StatusBarHeight)/2,
		float32(config.IndicatorRadius),
		config.TextLightColor,
	)
	indicator.SetColor(config.IdleIndicatorColor)

	speed := ui.NewSpeedButton(
		float32(cfg.BoardWidth()-config.SpeedButtonInset),
		float32(config.StatusBarHeight)/2,
		float32(config.SpeedButtonSize),
		cfg.StepsPerFrame,
		config.SpeedColors,
	)

	return &Scene{
		Ctx:       ctx,
		Config:    cfg,
		Board:     board,
		Renderer:  render.NewGridRenderer(layout, palette),
		StatusBar: ui.NewStatusBar(cfg.BoardWidth(), config.StatusBarHeight, config.StatusBarColor, config.TextLightColor),
		Indicator: indicator,
		Speed:     speed,
		Rng:       utils.NewPRNGService(cfg.Seed),
		Logger:    logger,
	}
}

// ScreenSize is the window size the scene needs.
func (s *Scene) ScreenSize() (int, int) {
	w := s.Config.BoardWidth()
	return w, w + config.StatusBarHeight
}

// HoveredCell returns the cell under the cursor, if any.
func (s *Scene) HoveredCell() (gridmap.Point, bool) {
	x, y := ebiten.CursorPosition()
	return s.Renderer.Layout().ScreenToCell(x, y)
}

// Draw paints the board, the status bar and the indicator.
func (s *Scene) Draw(screen *ebiten.Image, hover *gridmap.Point) {
	screen.Fill(config.StatusBarColor)
	s.Renderer.Draw(screen, s.Board, hover)
	s.StatusBar.Draw(screen)
	s.Indicator.Draw(screen)
	s.Speed.Draw(screen)
}

// HandleSpeedInput cycles the animation speed on F or a click on the
// speed button.
func (s *Scene) HandleSpeedInput() {
	clicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		clicked = s.Speed.Contains(ebiten.CursorPosition())
	}
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		steps := s.Speed.Toggle()
		s.Logger.Debug("animation speed changed", "steps_per_frame", steps)
	}
}

// ShowResult updates the status widgets for a finished search.
func (s *Scene) ShowResult(res gridmap.Result) {
	s.StatusBar.ShowResult(res)
	switch res.Outcome {
	case gridmap.PathFound:
		s.Indicator.SetColor(config.FoundIndicatorColor)
	case gridmap.PathNotFound:
		s.Indicator.SetColor(config.NotFoundIndicatorColor)
	default:
		s.Indicator.SetColor(config.CancelledIndicatorColor)
	}
}
