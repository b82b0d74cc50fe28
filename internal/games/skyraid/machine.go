package skyraid

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// legalTransitions lists the screens each screen may switch to.
var legalTransitions = map[StateID][]StateID{
	StateMenu:     {StateRunning},
	StateRunning:  {StatePaused, StateGameOver},
	StatePaused:   {StateRunning, StateMenu},
	StateGameOver: {StateMenu},
}

// Machine owns the four game states and dispatches to the active one.
// Transitions requested by a state are applied right after HandleInput
// and after Update.
type Machine struct {
	states  map[StateID]State
	active  StateID
	running *Running
	hud     *HUD
	logger  *log.Logger
}

// NewMachine builds all states and starts on the menu.
// A nil logger discards output.
func NewMachine(cfg config.Config, seed int64, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hud := NewHUD(false)
	running := NewRunning(cfg, seed, hud)

	m := &Machine{
		states: map[StateID]State{
			StateMenu:     &Menu{},
			StateRunning:  running,
			StatePaused:   &Paused{scene: running},
			StateGameOver: &GameOver{fps: cfg.Screen.FPS},
		},
		active:  StateMenu,
		running: running,
		hud:     hud,
		logger:  logger,
	}
	m.states[StateMenu].Enter(Payload{})
	return m
}

// HandleInput passes discrete and held input to the active state.
func (m *Machine) HandleInput(in core.InputFrame) {
	m.states[m.active].HandleInput(in)
	m.applyPending()
}

// Update advances the active state by one tick.
func (m *Machine) Update() {
	m.states[m.active].Update()
	m.applyPending()
}

// Render draws the active state.
func (m *Machine) Render(c core.Canvas) {
	m.states[m.active].Render(c)
}

// Active returns the current screen.
func (m *Machine) Active() StateID {
	return m.active
}

// State returns the state registered for id, or nil.
func (m *Machine) State(id StateID) State {
	return m.states[id]
}

// Running returns the running state, which is kept across runs.
func (m *Machine) Running() *Running {
	return m.running
}

// HUD returns the heads-up display shared by the running and paused screens.
func (m *Machine) HUD() *HUD {
	return m.hud
}

// Request switches to req.Target if that is a legal move from the active
// screen. Unknown or illegal targets are ignored. Returns true if the
// active state changed.
func (m *Machine) Request(req TransitionRequest) bool {
	target, ok := m.states[req.Target]
	if !ok || !m.legal(req.Target) {
		m.logger.Debug("transition ignored", "from", m.active, "to", req.Target)
		return false
	}

	from := m.active
	m.active = req.Target
	target.Enter(req.Payload)

	m.logger.Debug("transition", "from", from, "to", req.Target)
	if req.Target == StateGameOver {
		m.logger.Info("run finished", "score", req.Payload.Score, "kills", req.Payload.Kills, "ticks", req.Payload.Ticks)
	}
	return true
}

func (m *Machine) legal(target StateID) bool {
	for _, id := range legalTransitions[m.active] {
		if id == target {
			return true
		}
	}
	return false
}

func (m *Machine) applyPending() {
	req, ok := m.states[m.active].Pending()
	if !ok {
		return
	}
	m.Request(req)
}
