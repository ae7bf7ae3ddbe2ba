package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addRuleFlags registers the flags that select the game rules.
func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadRules resolves the config file and difficulty preset into engine rules.
func loadRules() (tetris.Rules, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return tetris.Rules{}, err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return tetris.Rules{}, fmt.Errorf("loading rules: %w", err)
	}
	config.ApplyTetrisPreset(&cfg, preset)

	rules := tetris.RulesFromConfig(cfg)
	if err := rules.Validate(); err != nil {
		return tetris.Rules{}, err
	}

	logger.Debug("rules loaded",
		"difficulty", preset,
		"base_interval", rules.BaseInterval,
		"interval_step", rules.IntervalStep,
	)
	return rules, nil
}
