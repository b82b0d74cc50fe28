package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyraid/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The configuration is searched in this order:
  --config <path>
  ~/.skyraid/configs/skyraid.yaml
  ./configs/skyraid.yaml
  built-in defaults

Save the output to one of those paths and edit it to tune the game.

Examples:
  skyraid config > ~/.skyraid/configs/skyraid.yaml
  skyraid config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		fmt.Fprint(cmd.OutOrStdout(), string(config.DefaultYAML()))
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
