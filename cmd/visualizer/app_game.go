// cmd/visualizer/app_game.go
package main

import (
	"context"
	"time"

	"go-astar-visualizer/internal/app"
	"go-astar-visualizer/internal/config"
	"go-astar-visualizer/internal/event"
	"go-astar-visualizer/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	scene          *state.Scene
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.scene.ScreenSize()
}

func runWindow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if srv := startDebugServer(cfg.MetricsAddr, registry, logger); srv != nil {
		defer srv.Close()
	}

	board, err := app.NewBoard(cfg.Rows, engine, event.NewDispatcher(), logger)
	if err != nil {
		return err
	}
	scene := state.NewScene(ctx, cfg, board, logger)

	sm := state.NewStateMachine()
	sm.SetState(state.NewEditState(sm, scene))
	game := &AppGame{
		stateMachine:   sm,
		scene:          scene,
		lastUpdateTime: time.Now(),
	}

	w, h := scene.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("A* Path Finding Algorithm")
	logger.Info("window opened", "rows", cfg.Rows, "width", w)
	return ebiten.RunGame(game)
}
