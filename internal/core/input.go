package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up (held)
	ActionDown              // S, Down arrow - move down (held)
	ActionLeft              // A, Left arrow - move left (held)
	ActionRight             // D, Right arrow - move right (held)
	ActionFire              // Space - fire (held)
	ActionConfirm           // Enter - start game, leave game over screen
	ActionCancel            // Escape, P - pause and resume
	ActionQuitToMenu        // Q - leave a paused run
	ActionQuit              // Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuitToMenu:
		return "QuitToMenu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsContinuous reports whether the action is sampled as held state every tick
// rather than delivered as a discrete key-down event.
func (a Action) IsContinuous() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionFire:
		return true
	default:
		return false
	}
}

// InputFrame is the input snapshot for one simulation tick.
// Actions holds discrete key-down events; Held holds keys that are down this tick.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks a discrete action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given discrete action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks a continuous action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the given continuous action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
