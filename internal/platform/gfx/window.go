// Package gfx runs a game in a desktop or mobile window with Ebitengine.
// Keyboard, mouse and multi-touch twin sticks feed the simulation; scenes
// are drawn with vector primitives and the debug font.
package gfx

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/platform/runner"
	"github.com/vovakirdan/outpost-arcade/internal/registry"
)

// Window implements ebiten.Game for one arcade game.
type Window struct {
	run   *runner.Runner
	cfg   core.RuntimeConfig
	input *Input
}

// NewWindow resets game and wraps it. A zero seed is replaced by the
// current time.
func NewWindow(game registry.Game, svc runner.Services, cfg core.RuntimeConfig) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = 0, 0
	return &Window{
		run:   runner.New(game, svc, cfg),
		cfg:   cfg,
		input: NewInput(),
	}
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	frame, quit := w.input.Poll()
	if quit || ebiten.IsWindowBeingClosed() {
		w.run.Leave()
		return ebiten.Termination
	}

	if w.run.State().GameOver && frame.Has(core.ActionRestart) {
		w.cfg.Seed = time.Now().UnixNano()
		w.run.Restart(w.cfg)
		return nil
	}
	w.run.Step(frame)
	return nil
}

// Draw renders the current scene with the held touch sticks.
func (w *Window) Draw(screen *ebiten.Image) {
	sc := w.run.Game().Scene()
	sc.Sticks = append(sc.Sticks, w.input.Views()...)
	drawScene(screen, sc)
}

// Layout fixes the logical screen to the play field.
func (w *Window) Layout(_, _ int) (int, int) {
	return core.FieldWidth, core.FieldHeight
}

// Run opens a window and plays game until the player quits or closes it.
func Run(game registry.Game, svc runner.Services, cfg core.RuntimeConfig) error {
	w := NewWindow(game, svc, cfg)

	ebiten.SetWindowSize(core.FieldWidth, core.FieldHeight)
	ebiten.SetWindowTitle(w.run.Info().Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
