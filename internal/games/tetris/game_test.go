package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50, // 20ms per tick keeps drop timing exact
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs must stay identical
	g1 := New(DefaultRules())
	g1.Reset(testConfig(12345))
	g2 := New(DefaultRules())
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := range 2000 {
		input.Clear()
		switch i % 37 {
		case 3:
			input.Set(core.ActionLeft)
		case 9:
			input.Set(core.ActionRotate)
		case 17:
			input.Set(core.ActionRight)
			input.Set(core.ActionRight)
		case 30:
			input.Set(core.ActionHardDrop)
		}
		if i%250 == 100 {
			input.Set(core.ActionHold)
		}

		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
	if s1.Locked == 0 {
		t.Error("expected some pieces to lock during the run")
	}
}

func TestGravityFollowsTickTime(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(1))

	input := core.NewInputFrame()
	for range 49 {
		g.Step(input)
	}
	if y := g.Snapshot().CurrentY; y != 0 {
		t.Fatalf("piece fell early: y=%d", y)
	}

	g.Step(input)
	if y := g.Snapshot().CurrentY; y != 1 {
		t.Errorf("expected one drop after 1s, y=%d", y)
	}
}

func TestDefaultTickRate(t *testing.T) {
	g := New(DefaultRules())
	cfg := testConfig(1)
	cfg.TickRate = 0
	g.Reset(cfg)

	if g.tickDt != time.Second/60 {
		t.Errorf("tickDt = %v, want %v", g.tickDt, time.Second/60)
	}
}

func TestHardDropAction(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(7))

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	g.Step(input)

	snap := g.Snapshot()
	if snap.Locked != 1 {
		t.Errorf("Locked = %d, want 1", snap.Locked)
	}
	if snap.Filled != 4 {
		t.Errorf("Filled = %d, want 4", snap.Filled)
	}
}

func TestActionsApplyInOrder(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(3))
	g.engine.current = NewPiece(KindO)

	// Left twice then hard drop: the piece must land two columns left
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionLeft)
	input.Set(core.ActionHardDrop)
	g.Step(input)

	if !g.engine.board.Occupied(2, 19) || !g.engine.board.Occupied(3, 18) {
		t.Error("expected O locked at columns 2-3")
	}
}

func TestPauseAndRestartActions(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(5))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	res := g.Step(input)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	input.Clear()
	input.Set(core.ActionHardDrop)
	g.Step(input)
	if g.Snapshot().Locked != 0 {
		t.Error("hard drop applied while paused")
	}

	input.Clear()
	input.Set(core.ActionRestart)
	res = g.Step(input)
	if res.State.Paused || res.State.GameOver {
		t.Errorf("restart should resume play, got %+v", res.State)
	}
}

func TestTooSmallHaltsPlay(t *testing.T) {
	g := New(DefaultRules())
	cfg := testConfig(1)
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	g.Reset(cfg)

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	for range 200 {
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.Locked != 0 || snap.CurrentY != 0 {
		t.Errorf("play advanced in a too small window: %+v", snap)
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too small message")
	}

	// Growing the window resumes play
	g.Resize(80, 24)
	g.Step(input)
	if g.Snapshot().Locked != 1 {
		t.Error("expected hard drop after resize")
	}
}

func TestRenderHUD(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"NEXT", "HOLD", "Score", "Lines", "Level"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.engine.TogglePause()
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected pause overlay")
	}
}

func TestOverlayClearsBoardBeneath(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(1))
	g.engine.TogglePause()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The message box is wider than the board, so the message rows show
	// no empty-cell dots
	found := false
	for y := range screen.Height() {
		row := screen.Row(y)
		if !strings.Contains(row, "Paused") && !strings.Contains(row, "Press P to continue") {
			continue
		}
		found = true
		if strings.ContainsRune(row, emptyGlyph) {
			t.Errorf("row %d shows board cells through the overlay: %q", y, row)
		}
	}
	if !found {
		t.Fatal("overlay text not rendered")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := New(DefaultRules())
	g.Reset(testConfig(1))
	e := g.engine
	for x := 3; x <= 6; x++ {
		e.board.Set(x, 0, core.ColorRed)
		e.board.Set(x, 1, core.ColorRed)
	}
	e.current = pieceAt(KindO, 0, 0)
	e.HardDrop()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected game over overlay")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false")
	}
}

func TestRulesFromConfig(t *testing.T) {
	r := RulesFromConfig(config.DefaultTetrisConfig())
	if r != DefaultRules() {
		t.Errorf("RulesFromConfig(defaults) = %+v, want %+v", r, DefaultRules())
	}
}
