package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Board is the playfield grid. A cell holds core.ColorDefault when empty,
// otherwise the color of the piece that was locked there.
type Board struct {
	cells [][]core.Color
}

// NewBoard creates an empty Rows×Cols board.
func NewBoard() *Board {
	b := &Board{cells: make([][]core.Color, Rows)}
	for y := range b.cells {
		b.cells[y] = emptyRow()
	}
	return b
}

func emptyRow() []core.Color {
	return make([]core.Color, Cols)
}

// Cell returns the color at (x, y). Out-of-range coordinates read as empty.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Set writes a color into a cell. Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	b.cells[y][x] = c
}

// Occupied reports whether the cell at (x, y) holds a locked block.
func (b *Board) Occupied(x, y int) bool {
	return b.Cell(x, y) != core.ColorDefault
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != core.ColorDefault {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{cells: make([][]core.Color, len(b.cells))}
	for y, row := range b.cells {
		c.cells[y] = make([]core.Color, len(row))
		copy(c.cells[y], row)
	}
	return c
}

// Collides reports whether p, shifted by (dx, dy), would leave the
// playfield sideways or through the floor, or overlap a locked cell.
// Cells above the top edge are never checked for occupancy so pieces can
// spawn partially above the visible area.
func (b *Board) Collides(p *Piece, dx, dy int) bool {
	for y, row := range p.Shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			bx := p.X + x + dx
			by := p.Y + y + dy
			if bx < 0 || bx >= Cols || by >= Rows {
				return true
			}
			if by >= 0 && b.cells[by][bx] != core.ColorDefault {
				return true
			}
		}
	}
	return false
}

// Lock writes the piece's color into the board. Cells above the top edge
// are dropped.
func (b *Board) Lock(p *Piece) {
	p.Cells(func(x, y int) {
		if y >= 0 {
			b.Set(x, y, p.Color)
		}
	})
}

// ClearLines removes every full row, shifting the rows above down and
// inserting empty rows at the top. Returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := Rows - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = emptyRow()
		cleared++
		// y now holds the row that was above; test it again.
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}
