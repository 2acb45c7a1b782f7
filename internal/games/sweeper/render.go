package sweeper

import (
	"fmt"

	"github.com/aluzhin/tui-sweeper/internal/core"
	"github.com/aluzhin/tui-sweeper/internal/mines"
)

const hudHeight = 2

const (
	runeClosed  = '.'
	runeFlag    = 'F'
	runeMine    = '*'
	runeMisflag = 'X'
	runeEmpty   = ' '
)

// digitColors holds the classic per-count palette, indexed by adjacency.
var digitColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the HUD, the board, and any end-of-round overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW = dst.Width()
	g.screenH = dst.Height()
	g.checkScreenSize()

	if g.tooSmall {
		msg := fmt.Sprintf("board %dx%d needs a bigger terminal", g.rows, g.cols)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	g.boardX = (dst.Width() - g.cols*g.cellW) / 2
	g.boardY = hudHeight
	if g.boardX < 0 {
		g.boardX = 0
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	switch g.state.Status {
	case mines.StatusWon:
		g.renderOverlay(dst, "CLEARED", core.ColorBrightGreen)
	case mines.StatusLost:
		g.renderOverlay(dst, "BOOM", core.ColorBrightRed)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s %dx%d", g.preset, g.rows, g.cols)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	parts := ""
	if g.display.ShowCounter {
		parts = fmt.Sprintf("mines %3d", g.state.MinesRemaining())
	}
	if g.display.ShowTimer {
		if parts != "" {
			parts += "  "
		}
		parts += fmt.Sprintf("%4ds", g.Elapsed())
	}
	if parts != "" {
		dst.DrawTextColored(dst.Width()-len(parts)-1, 0, parts, core.ColorBrightYellow)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			ch, color := g.cellGlyph(g.state.Board.At(r, c))
			x := g.boardX + c*g.cellW
			y := g.boardY + r
			dst.SetColored(x, y, ch, color)
		}
	}

	// Cursor markers fit the padding column in wide mode. In narrow mode
	// there is no padding, so recolor the cell instead.
	cx := g.boardX + g.cursorC*g.cellW
	cy := g.boardY + g.cursorR
	if g.cellW > 1 {
		dst.SetColored(cx-1, cy, '[', core.ColorBrightWhite)
		dst.SetColored(cx+1, cy, ']', core.ColorBrightWhite)
	} else {
		cell := g.state.Board.At(g.cursorR, g.cursorC)
		ch, _ := g.cellGlyph(cell)
		dst.SetColored(cx, cy, ch, core.ColorBrightWhite)
	}
}

// cellGlyph picks the rune and color for a cell, including the loss-state
// distinction between a correctly flagged mine and a misplaced flag.
func (g *Game) cellGlyph(cell mines.Cell) (rune, core.Color) {
	lost := g.state.Status == mines.StatusLost
	switch {
	case cell.Flagged && lost && !cell.Mine:
		return runeMisflag, core.ColorBrightRed
	case cell.Flagged:
		return runeFlag, core.ColorBrightYellow
	case !cell.Open:
		return runeClosed, core.ColorGray
	case cell.Mine:
		return runeMine, core.ColorBrightRed
	case cell.Adjacent == 0:
		return runeEmpty, core.ColorDefault
	default:
		return rune('0' + cell.Adjacent), digitColors[cell.Adjacent]
	}
}

func (g *Game) renderOverlay(dst *core.Screen, msg string, color core.Color) {
	boxW := len(msg) + 6
	boxH := 3
	x := (dst.Width() - boxW) / 2
	y := g.boardY + g.rows/2 - 1
	box := core.NewRect(x, y, boxW, boxH)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(x+3, y+1, msg, color)
}
