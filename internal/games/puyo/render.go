package puyo

import (
	"fmt"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/sim"
)

// Visual characters and layout
const (
	PuyoGlyph  = '●'
	EmptyGlyph = '·'

	cellW    = 2 // Screen columns per board column
	boardW   = sim.Width*cellW + 2
	boardH   = sim.Height + 2
	sideW    = 10
	blockW   = boardW + 1 + sideW
	blockH   = boardH + 1 // Player label above the board
	boardGap = 4
	hudH     = 2
	footerH  = 1
)

var puyoColors = map[sim.Color]core.Color{
	sim.Red:    core.ColorRed,
	sim.Green:  core.ColorGreen,
	sim.Blue:   core.ColorBlue,
	sim.Yellow: core.ColorYellow,
}

// keyHints labels each board with its controls in a duel.
var keyHints = []string{"arrows", "wasd"}

// MinScreenSize returns the smallest screen that fits n boards.
func MinScreenSize(n int) (w, h int) {
	n = max(1, n)
	return n*blockW + (n-1)*boardGap, hudH + blockH + footerH + 1
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	n := g.session.Players()
	needW, needH := MinScreenSize(n)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	area := core.NewRect(0, hudH, dst.Width(), dst.Height()-hudH-footerH).Centered(needW, blockH)
	for i, snap := range g.session.Snapshots() {
		x := area.X + i*(blockW+boardGap)
		label := ""
		if n > 1 {
			label = fmt.Sprintf("%s (%s)", core.PlayerForIndex(i), keyHints[i%len(keyHints)])
			if g.survivor == i {
				label += " winner"
			}
		}
		renderBoard(dst, x, area.Y, label, snap)
	}

	g.renderFooter(dst)

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Fall: %dms", g.Title(), g.session.FallInterval())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	n := g.session.Players()

	switch {
	case g.session.IsSessionOver() && n > 1:
		msg := "All players Game Over! Press R to restart"
		if g.survivor >= 0 {
			msg = fmt.Sprintf("%s wins! Press R to restart", core.PlayerForIndex(g.survivor))
		}
		dst.DrawTextCenteredIn(dst.Bounds(), y, msg, core.ColorBrightWhite)
	case g.session.IsSessionOver():
		dst.DrawTextCenteredIn(dst.Bounds(), y, "Game Over! Press R to restart", core.ColorBrightWhite)
	case n > 1:
		dst.DrawTextCenteredIn(dst.Bounds(), y, "P1: arrows, space rotates | P2: wasd, w rotates | R restart  P pause  Q quit", core.ColorGray)
	default:
		dst.DrawTextCenteredIn(dst.Bounds(), y, "arrows move, space rotates | R restart  P pause  Q quit", core.ColorGray)
	}
}

// renderBoard draws one player's well, falling pair, preview and score at (x, y).
func renderBoard(dst *core.Screen, x, y int, label string, snap sim.EngineSnapshot) {
	dst.DrawTextColored(x, y, label, core.ColorBrightWhite)

	well := core.NewRect(x, y+1, boardW, boardH)
	dst.DrawBox(well, core.ColorGray)
	inner := well.Inner()

	for row := range sim.Height {
		for col := range sim.Width {
			drawCell(dst, inner.X+col*cellW, inner.Y+row, snap.Cells[row][col])
		}
	}
	if snap.HasActive {
		for _, p := range snap.Active.Pieces {
			if sim.InBounds(p.Col, p.Row) {
				drawCell(dst, inner.X+p.Col*cellW, inner.Y+p.Row, p.Color)
			}
		}
	}

	side := x + boardW + 1
	dst.DrawTextColored(side, y+1, "Next", core.ColorWhite)
	preview := core.NewRect(side, y+2, 4, 4)
	dst.DrawBox(preview, core.ColorGray)
	if snap.HasNext {
		drawCell(dst, preview.X+1, preview.Y+1, snap.Next.Pieces[0].Color)
		drawCell(dst, preview.X+1, preview.Y+2, snap.Next.Pieces[1].Color)
	}

	dst.DrawTextColored(side, y+7, "Score", core.ColorWhite)
	dst.DrawTextColored(side, y+8, fmt.Sprintf("%d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextColored(side, y+10, "Chain", core.ColorWhite)
	dst.DrawTextColored(side, y+11, fmt.Sprintf("%d", snap.Stats.MaxChain), core.ColorBrightWhite)

	if snap.Over {
		mid := inner.Y + inner.H/2
		dst.DrawRect(core.NewRect(inner.X, mid-1, inner.W, 3), ' ', core.ColorDefault)
		dst.DrawTextCenteredIn(inner, mid-1, "GAME OVER", core.ColorRed)
		dst.DrawTextCenteredIn(inner, mid+1, fmt.Sprintf("Score %d", snap.Score), core.ColorBrightWhite)
	}
}

func drawCell(dst *core.Screen, x, y int, c sim.Color) {
	if c == sim.Empty {
		dst.SetColored(x, y, EmptyGlyph, core.ColorGray)
		return
	}
	dst.SetColored(x, y, PuyoGlyph, puyoColors[c])
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(textW+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredIn(box, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCenteredIn(box, box.Y+3, line2, core.ColorWhite)
}
