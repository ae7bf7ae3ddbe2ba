// Package config provides YAML-based rule loading and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains the tunable rules of the game.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisTiming defines the gravity curve:
// interval = max(min, base - (level-1)*step).
type TetrisTiming struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	IntervalStepMs int `yaml:"interval_step_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
}

// TetrisScoring defines line-clear points and level progression.
type TetrisScoring struct {
	LineScores    []int `yaml:"line_scores"` // Indexed by lines cleared at once (0..4)
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// BaseInterval returns the level-1 drop interval.
func (t TetrisTiming) BaseInterval() time.Duration {
	return time.Duration(t.BaseIntervalMs) * time.Millisecond
}

// IntervalStep returns the per-level interval reduction.
func (t TetrisTiming) IntervalStep() time.Duration {
	return time.Duration(t.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the interval floor.
func (t TetrisTiming) MinInterval() time.Duration {
	return time.Duration(t.MinIntervalMs) * time.Millisecond
}

// Validate checks that the config describes a playable game.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Timing.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("timing.min_interval_ms must be positive"))
	}
	if c.Timing.BaseIntervalMs < c.Timing.MinIntervalMs {
		errs = append(errs, errors.New("timing.base_interval_ms must not be below min_interval_ms"))
	}
	if c.Timing.IntervalStepMs < 0 {
		errs = append(errs, errors.New("timing.interval_step_ms must not be negative"))
	}
	if len(c.Scoring.LineScores) != 5 {
		errs = append(errs, errors.New("scoring.line_scores must have exactly 5 entries"))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("scoring.lines_per_level must be positive"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. An empty name is accepted and
// leaves the config untouched.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
