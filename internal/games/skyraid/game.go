// Package skyraid implements Sky Raid, a vertical shoot-em-up: the player ship
// fires at enemy ships falling from the top of the screen. The package holds
// the pure game logic and draws onto a core.Canvas supplied by the host.
package skyraid

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Game adapts the state machine to the host loop contract.
type Game struct {
	cfg     config.Config
	logger  *log.Logger
	runtime core.RuntimeConfig
	machine *Machine
}

// New creates a game with an immutable configuration. Call Reset before Step.
func New(cfg config.Config, logger *log.Logger) *Game {
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyraid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Raid"
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Reset rebuilds the state machine and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.machine = NewMachine(g.cfg, runtime.Seed, g.logger)
	g.machine.HUD().SetShowFPS(runtime.Debug && g.cfg.Debug.ShowFPS)
}

// Step processes one tick: input first, then the update.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) || (in.Has(core.ActionQuitToMenu) && g.machine.Active() == StateMenu) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.machine.HandleInput(in)
	g.machine.Update()

	return core.StepResult{State: g.State()}
}

// Render draws the active screen.
func (g *Game) Render(c core.Canvas) {
	g.machine.Render(c)
}

// State returns the current game state for the host.
func (g *Game) State() core.GameState {
	active := g.machine.Active()
	st := core.GameState{
		Screen:   active.String(),
		GameOver: active == StateGameOver,
		Paused:   active == StatePaused,
	}

	switch active {
	case StateRunning, StatePaused:
		p := g.machine.Running().Player()
		st.Score = p.Score
		st.Health = p.Health
	case StateGameOver:
		if over, ok := g.machine.State(StateGameOver).(*GameOver); ok {
			st.Score = over.Result().Score
		}
	}
	return st
}

// SetFPS forwards the measured frame rate to the HUD.
func (g *Game) SetFPS(fps float64) {
	g.machine.HUD().SetFPS(fps)
}

// Machine exposes the state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}
