package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts the Engine to the platform's fixed-tick loop: input frames
// become engine operations and every tick advances the drop scheduler by
// one tick's worth of time.
type Game struct {
	rules  Rules
	engine *Engine
	tick   uint64
	tickDt time.Duration

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game that plays by the given rules.
func New(rules Rules) *Game {
	return &Game{rules: rules}
}

// RulesFromConfig converts loaded YAML rules into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	r := Rules{
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		BaseInterval:  cfg.Timing.BaseInterval(),
		IntervalStep:  cfg.Timing.IntervalStep(),
		MinInterval:   cfg.Timing.MinInterval(),
	}
	copy(r.LineScores[:], cfg.Scoring.LineScores)
	return r
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game with a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDt = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.engine = NewEngine(cfg.Seed, g.rules)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the layout without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies this tick's input in arrival order, then advances gravity.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range input.Actions() {
		g.apply(a)
	}

	// Gravity halts while the playfield cannot be shown
	if !g.tooSmall {
		g.engine.Advance(g.tickDt)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionRestart:
		g.engine.Restart()
		return
	case core.ActionPause:
		g.engine.TogglePause()
		return
	}

	if g.tooSmall {
		return
	}

	switch a {
	case core.ActionLeft:
		g.engine.MoveLeft()
	case core.ActionRight:
		g.engine.MoveRight()
	case core.ActionSoftDrop:
		g.engine.Drop()
	case core.ActionHardDrop:
		g.engine.HardDrop()
	case core.ActionRotate:
		g.engine.Rotate()
	case core.ActionHold:
		g.engine.Hold()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		Pieces:   g.engine.Locked(),
		GameOver: g.engine.GameOver(),
		Paused:   g.engine.Paused(),
	}
}

// Engine exposes the underlying engine for read access.
func (g *Game) Engine() *Engine {
	return g.engine
}
