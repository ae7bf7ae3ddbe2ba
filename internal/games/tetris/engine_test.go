package tetris

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(1, DefaultRules())
}

// verticalI returns an I piece stood on end at column x.
func verticalI(x, y int) *Piece {
	p := pieceAt(KindI, x, y)
	p.Shape = p.Shape.Rotate()
	return p
}

func TestRestartCreatesNextBeforeCurrent(t *testing.T) {
	f := NewPieceFactory(99)
	first := f.Next().Kind
	second := f.Next().Kind

	e := NewEngine(99, DefaultRules())
	assert.Equal(t, first, e.Next().Kind)
	assert.Equal(t, second, e.Current().Kind)
}

func TestNewEngineState(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, 1, e.Level())
	assert.Nil(t, e.Held())
	assert.True(t, e.CanHold())
	assert.Equal(t, StatusRunning, e.Status())
	assert.Equal(t, time.Second, e.DropInterval())
	assert.Equal(t, 0, e.Board().Filled())
}

func TestAccessorsReturnCopies(t *testing.T) {
	e := newTestEngine(t)

	b := e.Board()
	b.Set(0, 19, core.ColorRed)
	assert.False(t, e.board.Occupied(0, 19))

	c := e.Current()
	c.X += 3
	assert.NotEqual(t, c.X, e.current.X)
}

func TestMoveToWalls(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindO)

	for range 4 {
		require.True(t, e.MoveLeft())
	}
	assert.False(t, e.MoveLeft())
	assert.Equal(t, 0, e.current.X)

	for range 8 {
		require.True(t, e.MoveRight())
	}
	assert.False(t, e.MoveRight())
	assert.Equal(t, 8, e.current.X)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindO) // Columns 4-5
	e.board.Set(3, 1, core.ColorRed)

	assert.False(t, e.MoveLeft())
	assert.Equal(t, 4, e.current.X)
}

func TestDropLocksWhenBlocked(t *testing.T) {
	e := newTestEngine(t)
	e.current = pieceAt(KindO, 0, 17)

	assert.True(t, e.Drop())
	assert.Equal(t, 18, e.current.Y)

	assert.False(t, e.Drop())
	assert.Equal(t, 1, e.Locked())
	assert.True(t, e.board.Occupied(0, 19))
	assert.True(t, e.board.Occupied(1, 18))
}

func TestHardDropO(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindO)
	promoted := e.next.Kind

	assert.Equal(t, 18, e.HardDrop())

	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, core.ColorYellow, e.board.Cell(c[0], c[1]), "cell %v", c)
	}
	assert.Equal(t, 4, e.board.Filled())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, promoted, e.current.Kind)
	assert.Equal(t, 0, e.current.Y)
}

func TestSingleLineClear(t *testing.T) {
	e := newTestEngine(t)
	fillRow(e.board, 19, 9)
	e.current = verticalI(9, 0)

	e.HardDrop()

	assert.Equal(t, 1, e.Lines())
	assert.Equal(t, 100, e.Score())
	assert.Equal(t, LockResult{Cleared: 1, Awarded: 100}, e.Last())
	assert.Equal(t, 3, e.board.Filled(), "remaining I cells")
	for x := range Cols {
		assert.False(t, e.board.Occupied(x, 0))
	}
}

func TestScoringTable(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{1, 300},
		{2, 900},
		{3, 1500},
		{4, 2400},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d rows", tc.rows), func(t *testing.T) {
			e := newTestEngine(t)
			e.level = 3
			e.lines = 20
			for y := Rows - tc.rows; y < Rows; y++ {
				fillRow(e.board, y, 9)
			}
			e.current = verticalI(9, 0)

			e.HardDrop()

			assert.Equal(t, tc.want, e.Score())
			assert.Equal(t, 20+tc.rows, e.Lines())
			assert.Equal(t, 3, e.Level())
			assert.Equal(t, 4-tc.rows, e.board.Filled())
		})
	}
}

func TestLevelUpAwardsAtOldLevel(t *testing.T) {
	e := newTestEngine(t)
	e.lines = 9
	fillRow(e.board, 19, 9)
	e.current = verticalI(9, 0)

	e.HardDrop()

	assert.Equal(t, 10, e.Lines())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 100, e.Score())
	assert.True(t, e.Last().LevelUp)
	assert.Equal(t, 950*time.Millisecond, e.DropInterval())
}

func TestRotateO(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindO)
	before := e.current.Clone()

	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.current)
}

func TestRotateInPlace(t *testing.T) {
	e := newTestEngine(t)
	e.current = pieceAt(KindT, 4, 5)

	require.True(t, e.Rotate())
	assert.True(t, e.current.Shape.Equal(parseShape("#.", "##", "#.")))
	assert.Equal(t, 4, e.current.X)
	assert.Equal(t, 5, e.current.Y)
}

func TestRotateWallKickLeft(t *testing.T) {
	e := newTestEngine(t)
	p := pieceAt(KindT, 8, 5)
	p.Shape = parseShape("#.", "##", "#.")
	e.current = p

	require.True(t, e.Rotate())
	assert.Equal(t, 7, e.current.X)
	assert.Equal(t, 5, e.current.Y)
	assert.True(t, e.current.Shape.Equal(parseShape("###", ".#.")))
}

func TestRotateKickUp(t *testing.T) {
	e := newTestEngine(t)
	e.current = pieceAt(KindT, 4, 18)

	require.True(t, e.Rotate())
	assert.Equal(t, 4, e.current.X)
	assert.Equal(t, 17, e.current.Y)
}

func TestRotateAllKicksFail(t *testing.T) {
	e := newTestEngine(t)
	// Flat I needs four columns; no kick reaches far enough from the wall
	e.current = verticalI(9, 5)
	before := e.current.Clone()

	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.current)
}

func TestHold(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindT)
	next := e.next.Kind

	require.True(t, e.Hold())
	assert.Equal(t, KindT, e.Held().Kind)
	assert.Equal(t, next, e.current.Kind)
	assert.False(t, e.CanHold())

	// Second hold before the piece locks is ignored
	cur, next, held := e.current, e.next, e.held
	assert.False(t, e.Hold())
	assert.Same(t, cur, e.current)
	assert.Same(t, next, e.next)
	assert.Same(t, held, e.held)
	assert.Equal(t, KindT, e.Held().Kind)
	assert.False(t, e.CanHold())

	e.current = pieceAt(KindO, 0, 0)
	e.HardDrop()
	require.True(t, e.CanHold())

	swapped := e.current.Kind
	e.current.Y = 6
	e.current.X = 0
	require.True(t, e.Hold())
	assert.Equal(t, KindT, e.current.Kind)
	assert.Equal(t, 4, e.current.X)
	assert.Equal(t, 0, e.current.Y)
	assert.Equal(t, swapped, e.Held().Kind)
}

func TestTogglePauseGatesInput(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindT)

	e.TogglePause()
	assert.Equal(t, StatusPaused, e.Status())

	assert.False(t, e.MoveLeft())
	assert.False(t, e.MoveRight())
	assert.False(t, e.Drop())
	assert.False(t, e.Rotate())
	assert.False(t, e.Hold())
	assert.Equal(t, 0, e.HardDrop())
	assert.Equal(t, 4, e.current.X)
	assert.Equal(t, 0, e.current.Y)
	assert.Equal(t, 0, e.Locked())

	e.TogglePause()
	assert.Equal(t, StatusRunning, e.Status())
	assert.True(t, e.MoveLeft())
}

func TestScheduledDrop(t *testing.T) {
	e := newTestEngine(t)

	e.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, e.current.Y)
	e.Advance(time.Millisecond)
	assert.Equal(t, 1, e.current.Y)

	e.TogglePause()
	e.Advance(5 * time.Second)
	assert.Equal(t, 1, e.current.Y, "no gravity while paused")

	e.TogglePause()
	e.Advance(time.Second)
	assert.Equal(t, 2, e.current.Y)
}

func TestGhostY(t *testing.T) {
	e := newTestEngine(t)
	e.current = NewPiece(KindO)
	assert.Equal(t, 18, e.GhostY())

	fillRow(e.board, 19)
	assert.Equal(t, 17, e.GhostY())
	assert.Equal(t, 0, e.current.Y, "ghost must not move the piece")
}

func TestGameOver(t *testing.T) {
	e := newTestEngine(t)
	for y := 0; y < 2; y++ {
		for x := 3; x <= 6; x++ {
			e.board.Set(x, y, core.ColorRed)
		}
	}
	e.current = pieceAt(KindO, 0, 0)

	e.HardDrop()

	require.True(t, e.GameOver())
	assert.Equal(t, StatusGameOver, e.Status())
	assert.False(t, e.sched.Running())

	// Nothing responds once the game is over
	locked := e.Locked()
	assert.False(t, e.MoveLeft())
	assert.False(t, e.Drop())
	assert.False(t, e.Rotate())
	assert.Equal(t, 0, e.HardDrop())
	e.TogglePause()
	assert.False(t, e.Paused())
	e.Advance(10 * time.Second)
	assert.Equal(t, locked, e.Locked())

	e.Restart()
	assert.False(t, e.GameOver())
	assert.Equal(t, StatusRunning, e.Status())
	assert.Equal(t, 0, e.board.Filled())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Locked())
	assert.Nil(t, e.Held())
	assert.True(t, e.sched.Running())
	assert.Equal(t, time.Second, e.DropInterval())
}

func TestRestartWhilePaused(t *testing.T) {
	e := newTestEngine(t)
	e.TogglePause()
	e.Restart()
	assert.Equal(t, StatusRunning, e.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "paused", StatusPaused.String())
	assert.Equal(t, "game_over", StatusGameOver.String())
	assert.Equal(t, "unknown", Status(9).String())
}
