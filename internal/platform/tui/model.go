package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Game is what the terminal host drives.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(c core.Canvas)
	SetFPS(fps float64)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	canvas   *core.ScaledCanvas
	renderer *Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	latch    *HoldLatch
	fps      *FPSMeter
	input    core.InputFrame
	state    core.GameState
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model drawing a worldW x worldH game onto the terminal.
func NewModel(game Game, cfg core.RuntimeConfig, worldW, worldH int, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:     game,
		renderer: NewRenderer(),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		latch:    NewHoldLatch(cfg.TickRate),
		fps:      &FPSMeter{},
		input:    core.NewInputFrame(),
		logger:   logger,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())
	m.canvas = core.NewScaledCanvas(m.screen, worldW, worldH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("terminal session started", "game", m.game.ID(), "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
		return m, nil
	}

	// Movement and fire are sampled every tick; everything else is an event
	action := m.keys.MapKey(msg)
	switch {
	case action.IsContinuous():
		m.latch.Press(action)
	case action != core.ActionNone:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The world keeps its size; only the cell grid it is scaled onto changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.latch.Apply(&m.input)
	result := m.game.Step(m.input)
	m.state = result.State

	// Clear input for next frame
	m.input.Clear()
	m.latch.Tick()
	if m.state.Screen != "running" {
		m.latch.Release()
	}

	m.game.SetFPS(m.fps.Tick(now))

	if result.Quit {
		m.quitting = true
		m.logger.Info("terminal session finished", "screen", m.state.Screen, "score", m.state.Score)
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// playfieldHeight returns the rows left for the game after the help footer.
func (m Model) playfieldHeight() int {
	footer := 1
	if m.help.ShowAll {
		for _, group := range m.keys.FullHelp() {
			footer = core.Max(footer, len(group))
		}
	}
	return core.Max(m.config.ScreenH-footer, 1)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.canvas)

	path, err := writeScreenshot(m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot writes the plain text of the screen under ~/.skyraid/screenshots.
func writeScreenshot(gameID string, s *core.Screen, now time.Time) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}

	dir := filepath.Join(home, ".skyraid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.canvas)

	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, cfg core.RuntimeConfig, worldW, worldH int, logger *log.Logger) error {
	model := NewModel(game, cfg, worldW, worldH, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program failed: %w", err)
	}
	return nil
}
