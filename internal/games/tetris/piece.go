// Package tetris implements the falling-block puzzle: playfield, pieces,
// collision, line clearing, rotation with wall kicks, hold, and the
// level-driven drop scheduler. The package is pure logic; the platform
// layer feeds it input and renders its state.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Shape is a row-major occupancy matrix.
type Shape [][]bool

// Clone returns a row-wise copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}

// Width returns the number of columns of the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows of the shape.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90° clockwise.
// For an n×m source the result is m×n with rotated[i][j] = s[n-1-j][i].
func (s Shape) Rotate() Shape {
	n, m := s.Height(), s.Width()
	out := make(Shape, m)
	for i := range m {
		out[i] = make([]bool, n)
		for j := range n {
			out[i][j] = s[n-1-j][i]
		}
	}
	return out
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// template is the immutable descriptor of a kind.
type template struct {
	shape Shape
	color core.Color
}

// parseShape builds a shape from rows of '#' and '.' characters.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

var templates = [kindCount]template{
	KindI: {parseShape("####"), core.ColorCyan},
	KindO: {parseShape("##", "##"), core.ColorYellow},
	KindT: {parseShape(".#.", "###"), core.ColorMagenta},
	KindS: {parseShape(".##", "##."), core.ColorGreen},
	KindZ: {parseShape("##.", ".##"), core.ColorRed},
	KindJ: {parseShape("#..", "###"), core.ColorBlue},
	KindL: {parseShape("..#", "###"), core.ColorOrange},
}

// Piece is a live tetromino instance. Its shape is owned by the piece and
// is rotated independently of the kind's template.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int // Top-left offset in board coordinates
}

// NewPiece creates a piece of the given kind at its spawn position.
func NewPiece(k Kind) *Piece {
	t := templates[k]
	p := &Piece{
		Kind:  k,
		Shape: t.shape.Clone(),
		Color: t.color,
	}
	p.Recenter()
	return p
}

// Recenter moves the piece back to the spawn position for its current shape.
func (p *Piece) Recenter() {
	p.X = Cols/2 - p.Shape.Width()/2
	p.Y = 0
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	c.Shape = p.Shape.Clone()
	return &c
}

// Cells calls fn with the board coordinates of every occupied cell.
func (p *Piece) Cells(fn func(x, y int)) {
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}

// PieceFactory produces uniformly random pieces from a seeded source.
type PieceFactory struct {
	rng *rand.Rand
}

// NewPieceFactory creates a factory seeded for reproducible sequences.
func NewPieceFactory(seed int64) *PieceFactory {
	return &PieceFactory{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a fresh piece of a random kind at its spawn position.
func (f *PieceFactory) Next() *Piece {
	return NewPiece(Kind(f.rng.Intn(int(kindCount))))
}
