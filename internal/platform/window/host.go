// Package window runs the game in a desktop window on Ebiten.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Game is what the window host drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(c core.Canvas)
	SetFPS(fps float64)
}

// Host adapts a Game to ebiten.Game. Ebiten calls Update at the tick rate
// and Draw once per frame.
type Host struct {
	game   Game
	canvas *Canvas
	worldW int
	worldH int
	state  core.GameState
	logger *log.Logger
}

// NewHost creates a host for a worldW x worldH game.
func NewHost(game Game, worldW, worldH int, logger *log.Logger) (*Host, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas, err := NewCanvas(worldW, worldH)
	if err != nil {
		return nil, err
	}

	return &Host{
		game:   game,
		canvas: canvas,
		worldW: worldW,
		worldH: worldH,
		logger: logger,
	}, nil
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	result := h.game.Step(pollInput())
	h.state = result.State
	h.game.SetFPS(ebiten.ActualTPS())

	if result.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active screen.
func (h *Host) Draw(screen *ebiten.Image) {
	h.canvas.SetTarget(screen)
	h.game.Render(h.canvas)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.worldW, h.worldH
}

// Run opens a window and blocks until the game quits or the window closes.
func Run(game Game, cfg core.RuntimeConfig, worldW, worldH int, logger *log.Logger) error {
	host, err := NewHost(game, worldW, worldH, logger)
	if err != nil {
		return err
	}

	game.Reset(cfg)

	ebiten.SetWindowSize(worldW, worldH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	host.logger.Info("window opened", "game", game.ID(), "size", fmt.Sprintf("%dx%d", worldW, worldH), "tps", cfg.TickRate, "seed", cfg.Seed)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window loop failed: %w", err)
	}

	host.logger.Info("window closed", "screen", host.state.Screen, "score", host.state.Score)
	return nil
}
