package core

// RuntimeConfig contains host settings passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal cells or window pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Show debug readouts such as FPS
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Screen   string // Name of the active screen (menu, running, paused, gameover)
	Score    int    // Current or final score
	Health   int    // Player health, 0 outside a run
	GameOver bool   // Whether the game over screen is showing
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to leave the program
}
