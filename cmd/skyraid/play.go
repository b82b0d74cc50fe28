package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyraid/internal/games/skyraid"
	"github.com/vovakirdan/skyraid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Sky Raid in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start / back to menu after game over
  Esc/P        - Pause and resume
  Q            - Back to menu while paused, quit from the menu
  Ctrl+S       - Save a text screenshot
  Ctrl+C       - Quit

Terminals do not report key releases, so movement continues for a moment
after a key is let go.

Examples:
  skyraid play
  skyraid play --seed 42
  skyraid play --debug --log-file skyraid.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stdout, so logs only go to --log-file
	s, err := bootstrap(globalOptions(), io.Discard)
	if err != nil {
		return err
	}
	defer s.close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	s.runtime.ScreenW = width
	s.runtime.ScreenH = height

	game := skyraid.New(s.cfg, s.logger)
	return tui.Run(game, s.runtime, s.cfg.Screen.Width, s.cfg.Screen.Height, s.logger)
}
