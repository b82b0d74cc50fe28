package skyraid

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

func testConfig() config.Config {
	return config.DefaultConfig()
}

// press builds a frame with discrete actions.
func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// hold builds a frame with held actions.
func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// startRun returns a machine that has just entered the running screen.
func startRun(seed int64) *Machine {
	m := NewMachine(testConfig(), seed, nil)
	m.HandleInput(press(core.ActionConfirm))
	return m
}
