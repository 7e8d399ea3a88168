package festival

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/festival-crush/internal/core"
	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// Layout constants
const (
	cellW     = 3  // terminal columns per board cell
	panelW    = 24 // goal panel width
	hudHeight = 2
	footerH   = 1
)

var symbolColors = map[core.SymbolType]platformcore.Color{
	core.Firecracker: platformcore.ColorRed,
	core.RedPocket:   platformcore.ColorPink,
	core.Dumpling:    platformcore.ColorBrightWhite,
	core.Bowl:        platformcore.ColorCyan,
	core.Lantern:     platformcore.ColorGold,
	core.Zodiac:      platformcore.ColorBrightGreen,
	core.Lock:        platformcore.ColorGray,
}

// layout places the board frame and checks the screen is big enough.
func (g *Game) layout() {
	if g.engine == nil {
		return
	}
	spec := g.engine.Spec()
	w := spec.Columns()*cellW + 2
	h := spec.Rows() + 2

	g.tooSmall = g.screenW < w+panelW+2 || g.screenH < h+hudHeight+footerH
	area := platformcore.NewRect(0, hudHeight, g.screenW-panelW, g.screenH-hudHeight-footerH)
	g.board = area.Centered(w, h)
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (core.Point, bool) {
	if g.engine == nil || g.tooSmall {
		return core.Point{}, false
	}
	inner := g.board.Inset(1)
	if !inner.Contains(x, y) {
		return core.Point{}, false
	}
	rows := g.engine.Spec().Rows()
	return core.P((x-inner.X)/cellW, rows-1-(y-inner.Y)), true
}

// screenPos returns the top-left screen position of a cell.
func (g *Game) screenPos(p core.Point) (int, int) {
	inner := g.board.Inset(1)
	rows := g.engine.Spec().Rows()
	return inner.X + p.Column*cellW, inner.Y + rows - 1 - p.Row
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.engine == nil {
		msg := "No levels found"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		g.renderOverlay(dst, platformcore.ColorBrightRed, "Cannot start level", msg, "Esc: menu  Q: quit")
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPanel(dst)
	g.renderFooter(dst)

	switch {
	case g.play.over != nil:
		g.renderResult(dst, *g.play.over)
	case g.paused:
		g.renderOverlay(dst, platformcore.ColorBrightYellow, "Paused", "", "P: continue  Esc: menu")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	name := g.engine.Spec().ID
	if lvl, ok := g.Level(); ok {
		name = lvl.Name()
	}
	dst.DrawTextWithColor(1, 0, "FESTIVAL CRUSH", platformcore.ColorBrightRed)
	dst.DrawTextWithColor(17, 0, name, platformcore.ColorGold)

	stats := fmt.Sprintf("Moves %d  Score %d  ", g.play.moves, g.play.score)
	stars := starString(g.engine.Spec().Goal.Stars(g.play.score))
	x := dst.Width() - len(stats) - 4
	dst.DrawText(x, 0, stats)
	dst.DrawTextWithColor(x+len(stats), 0, stars, platformcore.ColorGold)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	dst.DrawBoxWithColor(g.board, platformcore.ColorGray)

	b := g.engine.Board()
	for c := 0; c < b.Columns(); c++ {
		for r := 0; r < b.Rows(); r++ {
			p := core.P(c, r)
			x, y := g.screenPos(p)
			if !b.TileAt(c, r).Playable() {
				continue
			}
			g.renderCell(dst, x, y, p)
		}
	}

	if g.showHint {
		for _, p := range []core.Point{g.hint.A, g.hint.B} {
			x, y := g.screenPos(p)
			dst.Highlight(platformcore.NewRect(x, y, cellW, 1), platformcore.AttrUnderline)
		}
	}
}

func (g *Game) renderCell(dst *platformcore.Screen, x, y int, p core.Point) {
	left, right := ' ', ' '
	switch {
	case g.selecting && g.selected == p:
		left, right = '<', '>'
	case g.cursor == p:
		left, right = '[', ']'
	}

	s, ok := g.play.cells[p]
	mid := platformcore.Cell{Rune: '·', Color: platformcore.ColorGray}
	switch {
	case ok:
		mid = symbolCell(s.Type)
	case g.play.flash[p] > 0:
		mid = platformcore.Cell{Rune: '*', Color: platformcore.ColorBrightYellow, Attr: platformcore.AttrBold}
	}
	if g.play.shake[p] > 0 {
		mid.Color = platformcore.ColorBrightRed
	}

	frame := platformcore.ColorWhite
	if mid.Attr.Has(platformcore.AttrBold) && ok {
		frame = mid.Color
		if left == ' ' {
			left, right = '*', '*'
		}
	}
	dst.SetWithColor(x, y, left, frame)
	dst.SetCell(x+1, y, mid)
	dst.SetWithColor(x+2, y, right, frame)

	if g.selecting && g.selected == p {
		dst.Highlight(platformcore.NewRect(x, y, cellW, 1), platformcore.AttrReverse)
	}
}

// symbolCell returns the glyph for a symbol type. Enhanced symbols are bold.
func symbolCell(t core.SymbolType) platformcore.Cell {
	c := platformcore.Cell{Rune: rune(core.Glyph(t)), Color: symbolColors[t.Base()]}
	if t.IsEnhanced() {
		c.Attr = platformcore.AttrBold
	}
	return c
}

func (g *Game) renderPanel(dst *platformcore.Screen) {
	x := dst.Width() - panelW
	y := hudHeight + 1

	dst.DrawTextWithColor(x, y, "GOALS", platformcore.ColorBrightCyan)
	y++
	goal := g.play.goal
	for _, t := range goal.Target.Types() {
		left := max(goal.Target[t], 0)
		cell := symbolCell(t)
		dst.SetCell(x, y, cell)
		label := fmt.Sprintf(" %-12s %3d", t, left)
		color := platformcore.ColorDefault
		if left == 0 {
			label = fmt.Sprintf(" %-12s done", t)
			color = platformcore.ColorGreen
		}
		dst.DrawTextWithColor(x+1, y, label, color)
		y++
	}

	y++
	dst.DrawTextWithColor(x, y, "STARS", platformcore.ColorBrightCyan)
	y++
	for i, threshold := range []int{goal.FirstStar, goal.SecondStar, goal.ThirdStar} {
		color := platformcore.ColorGray
		if g.play.score >= threshold {
			color = platformcore.ColorGold
		}
		dst.DrawTextWithColor(x, y, fmt.Sprintf("%-4s %6d", strings.Repeat("★", i+1), threshold), color)
		y++
	}

	if g.play.note != "" {
		y++
		dst.DrawTextWithColor(x, y, g.play.note, platformcore.ColorBrightYellow)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	help := "Arrows: move  Enter: select/swap  X: shuffle  ?: hint  P: pause  Q: quit"
	if g.opts.Autoplay {
		help = "Demo: the bot is playing  P: pause  Esc: menu  Q: quit"
	}
	dst.DrawTextWithColor(1, dst.Height()-1, help, platformcore.ColorGray)
}

func (g *Game) renderResult(dst *platformcore.Screen, o core.Outcome) {
	score := fmt.Sprintf("Score %d  %s", o.Score, starString(o.Stars))
	switch {
	case o.Result == core.ResultLose:
		g.renderOverlay(dst, platformcore.ColorBrightRed, "Out of moves", score, "R: try again  Esc: menu")
	case g.lastLevel():
		g.renderOverlay(dst, platformcore.ColorGold, "All levels cleared!", score, "R: play again  Esc: menu")
	default:
		g.renderOverlay(dst, platformcore.ColorGold, "Level cleared!", score, "N: next level  R: try again  Esc: menu")
	}
}

// renderOverlay draws a centered box with a title and two text lines.
func (g *Game) renderOverlay(dst *platformcore.Screen, color platformcore.Color, title, line, help string) {
	width := max(len([]rune(title)), len([]rune(line)), len([]rune(help))) + 4
	box := dst.Bounds().Centered(width, 6)
	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, color)
	dst.DrawTextCenteredWithColor(box.Y+1, title, color)
	dst.DrawTextCentered(box.Y+2, line)
	dst.DrawTextCenteredWithColor(box.Y+4, help, platformcore.ColorGray)
}

func starString(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}
