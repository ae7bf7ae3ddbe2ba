package tetris

import "time"

// Status is the engine's top-level state.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// kick is a positional adjustment tried after a rotation collides.
type kick struct{ dx, dy int }

// kicks are tried in order; the first that fits wins.
var kicks = [...]kick{
	{0, 0},
	{-1, 0},
	{1, 0},
	{-2, 0},
	{2, 0},
	{0, -1},
}

// LockResult describes what happened when the last piece locked.
type LockResult struct {
	Cleared int  // Rows removed by this lock
	Awarded int  // Points added by this lock
	LevelUp bool // Whether the level increased
}

// Engine owns the board, the piece slots and the session counters, and
// performs every state transition of a game. It is not safe for
// concurrent use; the host delivers input and time on one goroutine.
type Engine struct {
	rules   Rules
	factory *PieceFactory
	sched   *DropScheduler

	board   *Board
	current *Piece
	next    *Piece
	held    *Piece
	canHold bool

	score  int
	lines  int
	level  int
	locked int // Pieces locked this game

	paused   bool
	gameOver bool
	last     LockResult
}

// NewEngine creates an engine with a seeded piece sequence and starts a
// new game.
func NewEngine(seed int64, rules Rules) *Engine {
	e := &Engine{
		rules:   rules,
		factory: NewPieceFactory(seed),
	}
	e.sched = NewDropScheduler(e.scheduledDrop)
	e.Restart()
	return e
}

// Restart discards the current game and begins a new one.
func (e *Engine) Restart() {
	e.board = NewBoard()
	e.score = 0
	e.lines = 0
	e.level = 1
	e.locked = 0
	e.paused = false
	e.gameOver = false
	e.last = LockResult{}
	e.held = nil
	e.canHold = true
	e.next = e.factory.Next()
	e.current = e.factory.Next()
	e.sched.Start(e.rules.DropInterval(e.level))
}

// acceptsInput reports whether player moves are currently processed.
func (e *Engine) acceptsInput() bool {
	return !e.paused && !e.gameOver
}

// MoveLeft shifts the current piece one column left if it fits.
func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

// MoveRight shifts the current piece one column right if it fits.
func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if !e.acceptsInput() || e.board.Collides(e.current, dx, 0) {
		return false
	}
	e.current.X += dx
	return true
}

// Drop moves the current piece down one row, or locks it when it cannot
// fall further. Returns true if the piece moved.
func (e *Engine) Drop() bool {
	if !e.acceptsInput() {
		return false
	}
	return e.drop()
}

func (e *Engine) drop() bool {
	if !e.board.Collides(e.current, 0, 1) {
		e.current.Y++
		return true
	}
	e.lockAndAdvance()
	return false
}

// HardDrop drops the current piece to its landing row and locks it.
// Returns the number of rows it fell.
func (e *Engine) HardDrop() int {
	if !e.acceptsInput() {
		return 0
	}
	rows := 0
	for !e.board.Collides(e.current, 0, 1) {
		e.current.Y++
		rows++
	}
	e.lockAndAdvance()
	return rows
}

// lockAndAdvance commits the current piece, clears lines and promotes the
// next piece. The game ends if the promoted piece does not fit.
func (e *Engine) lockAndAdvance() {
	e.board.Lock(e.current)
	e.locked++
	e.clearLines()

	e.current = e.next
	e.next = e.factory.Next()
	e.canHold = true

	if e.board.Collides(e.current, 0, 0) {
		e.gameOver = true
		e.sched.Stop()
	}
}

func (e *Engine) clearLines() {
	n := e.board.ClearLines()
	e.last = LockResult{Cleared: n}
	if n == 0 {
		return
	}

	e.last.Awarded = e.rules.Award(n, e.level)
	e.score += e.last.Awarded
	e.lines += n

	if lvl := e.rules.LevelFor(e.lines); lvl > e.level {
		e.level = lvl
		e.last.LevelUp = true
		e.sched.Start(e.rules.DropInterval(lvl))
	}
}

// Rotate turns the current piece clockwise, trying wall kicks when the
// rotation does not fit in place. The O piece never rotates. When no kick
// fits the piece is left untouched. Returns true if the rotation applied.
func (e *Engine) Rotate() bool {
	if !e.acceptsInput() || e.current.Kind == KindO {
		return false
	}

	p := e.current
	origShape, origX, origY := p.Shape, p.X, p.Y
	rotated := origShape.Rotate()

	for _, k := range kicks {
		p.Shape = rotated
		p.X = origX + k.dx
		p.Y = origY + k.dy
		if !e.board.Collides(p, 0, 0) {
			return true
		}
	}

	p.Shape, p.X, p.Y = origShape, origX, origY
	return false
}

// Hold sets the current piece aside. If a piece is already held the two
// are swapped and the returning piece restarts from the spawn position;
// otherwise the next piece is promoted. Only one hold is allowed per piece.
func (e *Engine) Hold() bool {
	if !e.acceptsInput() || !e.canHold {
		return false
	}

	if e.held != nil {
		e.current, e.held = e.held, e.current
		e.current.Recenter()
	} else {
		e.held = e.current
		e.current = e.next
		e.next = e.factory.Next()
	}
	e.canHold = false
	return true
}

// TogglePause flips the paused flag. Ignored after game over.
func (e *Engine) TogglePause() {
	if e.gameOver {
		return
	}
	e.paused = !e.paused
}

// Advance feeds elapsed time to the drop scheduler.
func (e *Engine) Advance(dt time.Duration) {
	e.sched.Advance(dt)
}

// scheduledDrop is the drop scheduler's tick.
func (e *Engine) scheduledDrop() {
	if e.paused || e.gameOver {
		return
	}
	e.drop()
}

// GhostY returns the row the current piece would land on if hard-dropped.
func (e *Engine) GhostY() int {
	dy := 0
	for !e.board.Collides(e.current, 0, dy+1) {
		dy++
	}
	return e.current.Y + dy
}

// Board returns a copy of the playfield.
func (e *Engine) Board() *Board { return e.board.Clone() }

// Current returns a copy of the falling piece.
func (e *Engine) Current() *Piece { return e.current.Clone() }

// Next returns a copy of the upcoming piece.
func (e *Engine) Next() *Piece { return e.next.Clone() }

// Held returns a copy of the held piece, or nil if nothing is held.
func (e *Engine) Held() *Piece { return e.held.Clone() }

// CanHold reports whether Hold is available for the current piece.
func (e *Engine) CanHold() bool { return e.canHold }

func (e *Engine) Score() int       { return e.score }
func (e *Engine) Lines() int       { return e.lines }
func (e *Engine) Level() int       { return e.level }
func (e *Engine) Locked() int      { return e.locked }
func (e *Engine) Paused() bool     { return e.paused }
func (e *Engine) GameOver() bool   { return e.gameOver }
func (e *Engine) Last() LockResult { return e.last }

// DropInterval returns the interval of the active drop schedule.
func (e *Engine) DropInterval() time.Duration { return e.sched.Interval() }

// Status returns the engine's top-level state.
func (e *Engine) Status() Status {
	switch {
	case e.gameOver:
		return StatusGameOver
	case e.paused:
		return StatusPaused
	default:
		return StatusRunning
	}
}
