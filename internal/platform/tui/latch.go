package tui

import (
	"github.com/vovakirdan/skyraid/internal/core"
)

// HoldLatch turns terminal key presses into held state.
//
// Terminals report key-down and auto-repeat but never key-up, so a press
// keeps its action held for a few ticks. The first press of a key waits out
// the terminal's repeat delay; later repeats only need to bridge the repeat
// interval. Pressing a direction releases its opposite at once.
type HoldLatch struct {
	first  int // Ticks held after an initial press
	repeat int // Ticks held after an auto-repeat
	held   map[core.Action]int
}

// opposite pairs directions that cancel each other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewHoldLatch creates a latch sized for the given tick rate.
func NewHoldLatch(tickRate int) *HoldLatch {
	return &HoldLatch{
		first:  core.Max(tickRate/3, 1),
		repeat: core.Max(tickRate/8, 1),
		held:   make(map[core.Action]int),
	}
}

// Press latches a continuous action. Other actions are ignored.
func (l *HoldLatch) Press(a core.Action) {
	if !a.IsContinuous() {
		return
	}
	if opp, ok := opposite[a]; ok {
		delete(l.held, opp)
	}

	if l.held[a] > 0 {
		l.held[a] = core.Max(l.held[a], l.repeat)
		return
	}
	l.held[a] = l.first
}

// Apply marks every latched action as held in the frame.
func (l *HoldLatch) Apply(f *core.InputFrame) {
	for a, ticks := range l.held {
		if ticks > 0 {
			f.Hold(a)
		}
	}
}

// Tick counts every latch down by one tick.
func (l *HoldLatch) Tick() {
	for a := range l.held {
		l.held[a]--
		if l.held[a] <= 0 {
			delete(l.held, a)
		}
	}
}

// Release drops every latched action.
func (l *HoldLatch) Release() {
	clear(l.held)
}

// Held reports whether the action is currently latched.
func (l *HoldLatch) Held(a core.Action) bool {
	return l.held[a] > 0
}
