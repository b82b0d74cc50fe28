package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/games/skyraid"
	"github.com/vovakirdan/skyraid/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Sky Raid in a desktop window.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start / back to menu after game over
  Esc/P        - Pause and resume
  Q            - Back to menu while paused, quit from the menu

Examples:
  skyraid window
  skyraid window --fps 120 --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := bootstrap(globalOptions(), os.Stderr)
	if err != nil {
		return err
	}
	defer s.close()

	s.runtime.ScreenW = s.cfg.Screen.Width
	s.runtime.ScreenH = s.cfg.Screen.Height

	game := skyraid.New(s.cfg, s.logger)
	return window.Run(game, s.runtime, s.cfg.Screen.Width, s.cfg.Screen.Height, s.logger)
}
