package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default rules file",
	Long: `Print the built-in rules as YAML. Save the output to
~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml to customize it.

Example:
  tetris defaults > ~/.tetris/configs/tetris.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
