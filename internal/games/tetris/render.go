package tetris

import (
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout, in screen cells. Every board cell is two characters wide.
const (
	maxPreview = 6

	cellW      = 2
	boardW     = engine.Width*cellW + 2
	boardH     = engine.Height + 2
	sideW      = 14
	nextW      = 12
	panelGap   = 1
	pieceRows  = 3
	layoutW    = sideW + panelGap + boardW + panelGap + nextW
	layoutH    = boardH
	holdBoxH   = 4
	statsStart = holdBoxH + 1
)

// MinScreenSize returns the smallest screen the playfield fits on.
func MinScreenSize() (w, h int) {
	return layoutW, layoutH
}

// pieceColors gives each piece its conventional color.
var pieceColors = [...]core.Color{
	engine.PieceNone: core.ColorDefault,
	engine.PieceI:    core.ColorCyan,
	engine.PieceJ:    core.ColorBlue,
	engine.PieceL:    core.ColorOrange,
	engine.PieceO:    core.ColorYellow,
	engine.PieceS:    core.ColorGreen,
	engine.PieceT:    core.ColorMagenta,
	engine.PieceZ:    core.ColorRed,
}

// PieceColor returns the display color of t.
func PieceColor(t engine.PieceType) core.Color {
	if int(t) >= len(pieceColors) {
		return core.ColorDefault
	}
	return pieceColors[t]
}

// Render draws the board, ghost, active piece, hold slot, next queue and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < layoutW || dst.Height() < layoutH {
		dst.DrawTextCenteredColored(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, "Need "+strconv.Itoa(layoutW)+"x"+strconv.Itoa(layoutH))
		return
	}
	if g.session == nil {
		return
	}

	f := g.session.Frame()
	ox := (dst.Width() - layoutW) / 2
	oy := (dst.Height() - layoutH) / 2

	left := core.NewRect(ox, oy, sideW, layoutH)
	board := core.NewRect(left.Right()+panelGap, oy, boardW, boardH)
	right := core.NewRect(board.Right()+panelGap, oy, nextW, layoutH)

	g.renderBoard(dst, board, f)
	g.renderHold(dst, left, f)
	g.renderStats(dst, left, f)
	g.renderNext(dst, right, f)

	switch g.session.Status() {
	case StatusPaused:
		renderOverlay(dst, board, core.ColorBrightYellow, "PAUSED", "P to resume")
	case StatusGameOver:
		renderOverlay(dst, board, core.ColorBrightRed, "GAME OVER", "Score "+strconv.Itoa(f.Score), "R to restart")
	}
}

// drawCell paints one board cell at grid position (x, y) inside area.
func drawCell(dst *core.Screen, area core.Rect, x, y int, r rune, c core.Color) {
	sx := area.X + x*cellW
	dst.SetColored(sx, area.Y+y, r, c)
	dst.SetColored(sx+1, area.Y+y, r, c)
}

func (g *Game) renderBoard(dst *core.Screen, area core.Rect, f engine.Frame) {
	dst.DrawBox(area, core.ColorGray)
	inner := area.Inner()

	for y := range engine.Height {
		for x := range engine.Width {
			if t := f.Board[y][x]; t != engine.PieceNone {
				drawCell(dst, inner, x, y, '█', PieceColor(t))
				continue
			}
			dst.SetColored(inner.X+x*cellW+1, inner.Y+y, '·', core.ColorGray)
		}
	}

	if f.Active == nil {
		return
	}
	if g.options.Ghost {
		for _, c := range f.Ghost() {
			if c.Y >= 0 {
				drawCell(dst, inner, c.X, c.Y, '░', core.ColorGray)
			}
		}
	}
	for _, c := range f.Active.Cells() {
		if c.Y >= 0 {
			drawCell(dst, inner, c.X, c.Y, '█', PieceColor(f.Active.Type))
		}
	}
}

// drawMiniPiece draws t in spawn orientation with its top-left at (x, y).
func drawMiniPiece(dst *core.Screen, x, y int, t engine.PieceType, c core.Color) {
	// Offsets span columns -1..2; the anchor row shift puts every
	// footprint on rows 0..1.
	dy := engine.SpawnPosition(t).Y
	for _, p := range engine.Shape(t, 0) {
		sx := x + (p.X+1)*cellW
		sy := y + dy + p.Y
		dst.SetColored(sx, sy, '█', c)
		dst.SetColored(sx+1, sy, '█', c)
	}
}

func (g *Game) renderHold(dst *core.Screen, panel core.Rect, f engine.Frame) {
	box := core.NewRect(panel.X, panel.Y, panel.W, holdBoxH)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColored(box.X+2, box.Y, " HOLD ", core.ColorWhite)

	if f.Held == engine.PieceNone {
		return
	}
	color := PieceColor(f.Held)
	if !f.CanHold {
		color = core.ColorGray
	}
	drawMiniPiece(dst, box.X+3, box.Y+1, f.Held, color)
}

func (g *Game) renderStats(dst *core.Screen, panel core.Rect, f engine.Frame) {
	y := panel.Y + statsStart
	x := panel.X + 1

	dst.DrawTextColored(x, y, g.difficulty.Title(), core.ColorBrightCyan)
	y += 2

	rows := []struct {
		label string
		value int
	}{
		{"SCORE", f.Score},
		{"LEVEL", f.Level},
		{"LINES", f.Lines},
		{"NEXT LEVEL", f.LinesToNextLevel},
	}
	for _, r := range rows {
		dst.DrawTextColored(x, y, r.label, core.ColorGray)
		dst.DrawTextColored(x, y+1, strconv.Itoa(r.value), core.ColorBrightWhite)
		y += 3
	}
}

func (g *Game) renderNext(dst *core.Screen, panel core.Rect, f engine.Frame) {
	n := g.options.Preview
	if n == 0 {
		return
	}
	box := core.NewRect(panel.X, panel.Y, panel.W, 2+n*pieceRows)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColored(box.X+2, box.Y, " NEXT ", core.ColorWhite)

	for i, t := range f.Preview(n) {
		drawMiniPiece(dst, box.X+1, box.Y+1+i*pieceRows, t, PieceColor(t))
	}
}

// renderOverlay draws centered lines over the middle of area.
func renderOverlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	top := area.Y + area.H/2 - len(lines)/2
	for i, line := range lines {
		x := area.X + (area.W-len(line))/2
		blank := make([]rune, len(line)+2)
		for j := range blank {
			blank[j] = ' '
		}
		dst.DrawText(x-1, top+i, string(blank))
		color := core.ColorBrightWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(x, top+i, line, color)
	}
}
