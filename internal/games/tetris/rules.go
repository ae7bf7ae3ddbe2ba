package tetris

import (
	"errors"
	"time"
)

// Playfield dimensions. Fixed for the lifetime of every game.
const (
	Cols = 10
	Rows = 20
)

// Rules holds the scoring table and drop-speed curve.
type Rules struct {
	LineScores    [5]int // Points per simultaneous clear, indexed by line count
	LinesPerLevel int
	BaseInterval  time.Duration // Drop interval at level 1
	IntervalStep  time.Duration // Reduction per level
	MinInterval   time.Duration // Floor for the drop interval
}

// DefaultRules returns the classic scoring table and speed curve.
func DefaultRules() Rules {
	return Rules{
		LineScores:    [5]int{0, 100, 300, 500, 800},
		LinesPerLevel: 10,
		BaseInterval:  1000 * time.Millisecond,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   100 * time.Millisecond,
	}
}

// Validate reports rules that would stall or break the drop loop.
func (r Rules) Validate() error {
	switch {
	case r.LinesPerLevel <= 0:
		return errors.New("tetris: lines per level must be positive")
	case r.MinInterval <= 0:
		return errors.New("tetris: minimum drop interval must be positive")
	case r.BaseInterval < r.MinInterval:
		return errors.New("tetris: base drop interval is below the minimum")
	case r.IntervalStep < 0:
		return errors.New("tetris: drop interval step must not be negative")
	}
	for _, s := range r.LineScores {
		if s < 0 {
			return errors.New("tetris: line scores must not be negative")
		}
	}
	return nil
}

// Award returns the points for clearing n rows at once at the given level.
func (r Rules) Award(n, level int) int {
	if n <= 0 || n >= len(r.LineScores) {
		return 0
	}
	return r.LineScores[n] * level
}

// LevelFor returns the level reached after clearing the given number of lines.
func (r Rules) LevelFor(lines int) int {
	return lines/r.LinesPerLevel + 1
}

// DropInterval returns the gravity interval for a level.
func (r Rules) DropInterval(level int) time.Duration {
	return max(r.MinInterval, r.BaseInterval-time.Duration(level-1)*r.IntervalStep)
}
