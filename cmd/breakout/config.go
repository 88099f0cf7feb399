package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way the game does and prints it as
YAML. Without --config the search order is ~/.breakout/, ./configs/ and then
the built-in defaults.

Examples:
  breakout config > ~/.breakout/breakout.yaml
  breakout config --config ./custom.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
