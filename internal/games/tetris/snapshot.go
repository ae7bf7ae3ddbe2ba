package tetris

import "time"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Status       Status
	Score        int
	Lines        int
	Level        int
	Locked       int
	Current      Kind
	CurrentX     int
	CurrentY     int
	Next         Kind
	Held         string // Empty when nothing is held
	CanHold      bool
	Filled       int // Occupied board cells
	DropInterval time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	held := ""
	if e.held != nil {
		held = e.held.Kind.String()
	}
	return Snapshot{
		Tick:         g.tick,
		Status:       e.Status(),
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		Locked:       e.locked,
		Current:      e.current.Kind,
		CurrentX:     e.current.X,
		CurrentY:     e.current.Y,
		Next:         e.next.Kind,
		Held:         held,
		CanHold:      e.canHold,
		Filled:       e.board.Filled(),
		DropInterval: e.DropInterval(),
	}
}
