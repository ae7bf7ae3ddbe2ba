package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout in screen cells. Each board cell is two characters wide so blocks
// look square in a terminal.
const (
	cellW    = 2
	boardW   = Cols*cellW + 2 // Including frame
	boardH   = Rows + 2
	panelGap = 2
	panelW   = 14
	previewH = 4

	minScreenW = boardW + panelGap + panelW
	minScreenH = boardH
)

const (
	blockGlyph = '█'
	ghostGlyph = '░'
	emptyGlyph = '·'
)

// Render draws the playfield, previews and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()),
			"Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	ox := max(0, (dst.Width()-minScreenW)/2)
	oy := max(0, (dst.Height()-minScreenH)/2)
	frame := core.NewRect(ox, oy, boardW, boardH)

	g.renderBoard(dst, frame)
	g.renderPanel(dst, frame.Right()+panelGap, oy)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, frame, "Game Over", "Press R to restart")
	case g.engine.Paused():
		g.renderOverlay(dst, frame, "Paused", "Press P to continue")
	}
}

// renderBoard draws the frame, locked cells, ghost and falling piece.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame)
	inner := frame.Inset(1)
	e := g.engine

	for y := range Rows {
		for x := range Cols {
			if c := e.board.Cell(x, y); c != core.ColorDefault {
				drawBlock(dst, inner, x, y, blockGlyph, c)
			} else {
				dst.SetColored(inner.X+x*cellW+1, inner.Y+y, emptyGlyph, core.ColorGray)
			}
		}
	}

	if e.GameOver() {
		return
	}

	ghost := e.current.Clone()
	ghost.Y = e.GhostY()
	ghost.Cells(func(x, y int) {
		drawBlock(dst, inner, x, y, ghostGlyph, core.ColorGray)
	})

	e.current.Cells(func(x, y int) {
		drawBlock(dst, inner, x, y, blockGlyph, e.current.Color)
	})
}

// drawBlock paints board cell (x, y) inside the frame. Rows above the
// visible board are skipped.
func drawBlock(dst *core.Screen, inner core.Rect, x, y int, glyph rune, c core.Color) {
	if y < 0 {
		return
	}
	sx := inner.X + x*cellW
	for i := range cellW {
		dst.SetColored(sx+i, inner.Y+y, glyph, c)
	}
}

// renderPanel draws the next/hold previews and counters.
func (g *Game) renderPanel(dst *core.Screen, px, py int) {
	e := g.engine

	renderPreview(dst, core.NewRect(px, py, panelW, previewH), "NEXT", e.next, core.ColorWhite)

	holdTitle := core.ColorWhite
	if !e.canHold {
		holdTitle = core.ColorGray
	}
	renderPreview(dst, core.NewRect(px, py+previewH, panelW, previewH), "HOLD", e.held, holdTitle)

	y := py + 2*previewH + 1
	dst.DrawText(px, y, fmt.Sprintf("Score %7d", e.score))
	dst.DrawText(px, y+1, fmt.Sprintf("Lines %7d", e.lines))
	dst.DrawText(px, y+2, fmt.Sprintf("Level %7d", e.level))
	dst.DrawTextColored(px, y+4, fmt.Sprintf("Pieces %6d", e.locked), core.ColorGray)
}

// renderPreview draws a titled box with a piece in its spawn orientation.
func renderPreview(dst *core.Screen, box core.Rect, title string, p *Piece, titleColor core.Color) {
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+2, box.Y, " "+title+" ", titleColor)
	if p == nil {
		return
	}

	shape := templates[p.Kind].shape
	inner := box.Inset(1)
	x0 := inner.X + (inner.W-shape.Width()*cellW)/2
	for y, row := range shape {
		for x, filled := range row {
			if !filled {
				continue
			}
			for i := range cellW {
				dst.SetColored(x0+x*cellW+i, inner.Y+y, blockGlyph, p.Color)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box over an area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(area, box.Y+1, line1)
	dst.DrawTextCentered(area, box.Y+3, line2)
}
