// Package tui runs the game in a terminal on Bubble Tea.
// It handles the terminal UI loop, input mapping, and rendering of the cell screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FPSMeter measures the achieved tick rate over one-second windows.
type FPSMeter struct {
	start  time.Time
	frames int
	fps    float64
}

// Tick records a frame at time now. Returns the latest measurement.
func (m *FPSMeter) Tick(now time.Time) float64 {
	if m.start.IsZero() {
		m.start = now
	}
	m.frames++

	if elapsed := now.Sub(m.start); elapsed >= time.Second {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.start = now
	}
	return m.fps
}

// FPS returns the latest measurement.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
