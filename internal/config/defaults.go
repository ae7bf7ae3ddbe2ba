package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic rules.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			BaseIntervalMs: 1000,
			IntervalStepMs: 50,
			MinIntervalMs:  100,
		},
		Scoring: TetrisScoring{
			LineScores:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
