// skyraid is a vertical shoot-em-up for the terminal and the desktop.
//
// Usage:
//
//	skyraid play        - Play in the terminal
//	skyraid window      - Play in a desktop window
//	skyraid config      - Print the effective configuration as YAML
//	skyraid controls    - List the terminal key bindings
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: screen.fps from config)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--debug            - Show the FPS readout and log at debug level
//	--config <path>    - Use a custom config YAML
//	--log-file <path>  - Write logs to a file (terminal mode logs nowhere by default)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDebug   bool
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyraid",
	Short: "Sky Raid - a vertical shoot-em-up",
	Long: `Sky Raid is a small vertical shoot-em-up. Fly your ship, shoot down
the enemy ships falling from the sky, and avoid ramming them.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  config    - Print the effective configuration
  controls  - List the key bindings

Examples:
  skyraid play
  skyraid play --seed 42 --debug --log-file skyraid.log
  skyraid window --fps 120
  skyraid config --config ./my-skyraid.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = screen.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show FPS and enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(controlsCmd)
}
