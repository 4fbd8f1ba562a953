package matchthree

import (
	"fmt"
	"math"

	"github.com/DeXoteric/MatchThreeGame/internal/core"
	"github.com/DeXoteric/MatchThreeGame/internal/match3"
)

const (
	cellWidth = 3 // "[R]": cursor brackets around the piece
	hudHeight = 3
)

var kindColors = map[match3.PieceKind]core.Color{
	match3.Yellow:  core.ColorYellow,
	match3.Blue:    core.ColorBlue,
	match3.Magenta: core.ColorMagenta,
	match3.Indigo:  core.ColorIndigo,
	match3.Green:   core.ColorGreen,
	match3.Teal:    core.ColorTeal,
	match3.Red:     core.ColorRed,
	match3.Cyan:    core.ColorCyan,
	match3.Wild:    core.ColorBrightWhite,
}

// KindColor returns the screen color used for a piece kind.
func KindColor(k match3.PieceKind) core.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return core.ColorGray
}

// boardExtent returns the on-screen size of the framed board.
func boardExtent(grid *match3.Grid) (w, h int) {
	return grid.Width()*cellWidth + 2, grid.Height() + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardExtent(g.grid)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderBoard(dst, boardX+1, boardY+1)

	if g.message != "" {
		dst.DrawTextCentered(boardY+boardH, g.message)
	}

	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score and move counter.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.limited() {
		info = fmt.Sprintf("Moves: %d", g.movesLeft)
	} else {
		info = fmt.Sprintf("Moves: %d", g.moves)
	}
	if g.mode == ModeClassic {
		info = fmt.Sprintf("Board %d  %s", g.boards, info)
	}
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)
}

// cellOrigin maps a board coordinate to the left column of its screen cell.
// Row 0 of the board is drawn at the bottom.
func (g *Game) cellOrigin(originX, originY int, c match3.Coord) (x, y int) {
	return originX + c.X*cellWidth, originY + g.grid.Height() - 1 - c.Y
}

func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	var moving [2]match3.Coord
	if g.tween != nil {
		moving = [2]match3.Coord{g.tween.result.Swap.A, g.tween.result.Swap.B}
	}

	flashing := make(map[match3.Coord]bool)
	if g.flash != nil {
		for _, c := range g.flash.cells {
			flashing[c] = true
		}
	}

	for _, c := range g.grid.Coords() {
		if g.tween != nil && (c == moving[0] || c == moving[1]) {
			continue
		}
		kind, _ := g.grid.Get(c)
		x, y := g.cellOrigin(originX, originY, c)

		switch {
		case kind.IsEmpty():
			dst.SetColored(x+1, y, '.', core.ColorGray)
		case flashing[c] && (g.flash.ticks/4)%2 == 0:
			dst.SetColored(x+1, y, '*', KindColor(kind))
		default:
			dst.SetColored(x+1, y, kind.Char(), KindColor(kind))
		}
	}

	if g.tween != nil {
		g.renderTween(dst, originX, originY)
	}

	g.renderMarkers(dst, originX, originY)
}

// renderTween draws the two swapping pieces at their interpolated positions.
func (g *Game) renderTween(dst *core.Screen, originX, originY int) {
	swap := g.tween.result.Swap
	kindA, _ := g.grid.Get(swap.A)
	kindB, _ := g.grid.Get(swap.B)
	ax, ay, bx, by := g.tween.positions()

	draw := func(fx, fy float64, k match3.PieceKind) {
		x := originX + int(math.Round(fx*cellWidth)) + 1
		y := originY + g.grid.Height() - 1 - int(math.Round(fy))
		dst.SetColored(x, y, k.Char(), KindColor(k))
	}
	draw(ax, ay, kindA)
	draw(bx, by, kindB)
}

// renderMarkers draws hint, selection and cursor brackets, cursor on top.
func (g *Game) renderMarkers(dst *core.Screen, originX, originY int) {
	bracket := func(c match3.Coord, open, closing rune, color core.Color) {
		x, y := g.cellOrigin(originX, originY, c)
		dst.SetColored(x, y, open, color)
		dst.SetColored(x+cellWidth-1, y, closing, color)
	}

	if g.hint != nil {
		bracket(g.hint.A, '{', '}', core.ColorOrange)
		bracket(g.hint.B, '{', '}', core.ColorOrange)
	}
	if first, ok := g.sel.First(); ok {
		bracket(first, '<', '>', core.ColorYellow)
	}
	if g.tween == nil {
		bracket(g.cursor, '[', ']', core.ColorBrightWhite)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		reason := "Out of moves"
		if !g.limited() || g.movesLeft > 0 {
			reason = "No swaps left"
		}
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason,
			fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a centered framed text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
