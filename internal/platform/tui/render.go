package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/game"
	"github.com/vovakirdan/memory-match/internal/layout"
)

// The layout engine works in pixel units; one terminal cell approximates an
// 8×16 px block of a typical monospace glyph.
const (
	cellPxW = 8
	cellPxH = 16
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGold:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorNavy:        lipgloss.NewStyle().Foreground(lipgloss.Color("61")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellRectChars converts a pixel-space card rectangle to character cells.
func cellRectChars(px core.Rect) core.Rect {
	return core.NewRect(
		px.X/cellPxW,
		px.Y/cellPxH,
		core.Max(3, px.W/cellPxW),
		core.Max(2, px.H/cellPxH),
	)
}

// drawBoard renders the HUD and every card into the screen buffer.
func drawBoard(dst *core.Screen, board *game.Board, lay layout.Layout, elapsedSecs int, cursorRow, cursorCol int) {
	dst.Clear()
	drawHUD(dst, board, elapsedSecs)

	for _, card := range board.Cards() {
		cursor := card.Row() == cursorRow && card.Col() == cursorCol
		drawCard(dst, board, card, lay, cursor)
	}
}

// drawHUD draws the header band: title line, score line, separator.
func drawHUD(dst *core.Screen, board *game.Board, elapsedSecs int) {
	title := fmt.Sprintf(" MEMORY MATCH %dx%d", board.GridSize(), board.GridSize())
	dst.DrawText(0, 0, title, core.ColorGold)

	score := fmt.Sprintf(" Pairs: %d/%d  Moves: %d  Time: %02d:%02d",
		board.MatchedPairs(), board.PairsCount(), board.Moves(),
		elapsedSecs/60, elapsedSecs%60)
	dst.DrawText(0, 1, score, core.ColorWhite)

	controls := "arrows: move  enter: flip  r: reset  q: quit"
	if len(controls)+len(score)+3 < dst.Width() {
		dst.DrawText(dst.Width()-len(controls)-1, 1, controls, core.ColorGray)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorNavy)
}

// drawCard renders one card, applying the flip animation's horizontal
// shrink so the card visually collapses to a sliver at the midpoint.
func drawCard(dst *core.Screen, board *game.Board, card *game.Card, lay layout.Layout, cursor bool) {
	rect := cellRectChars(lay.CellRect(card.Row(), card.Col()))

	// Horizontal scale from the flip animation
	scaled := rect
	if f := card.ScaleFactor(); f < 1.0 {
		sw := core.Max(1, int(math.Round(float64(rect.W)*f)))
		scaled = core.NewRect(rect.X+(rect.W-sw)/2, rect.Y, sw, rect.H)
	}

	borderColor := core.ColorNavy
	switch {
	case card.State() == game.Matched:
		borderColor = core.ColorGold
	case card.Hovered || cursor:
		borderColor = core.ColorYellow
	case card.ShowFront():
		borderColor = core.ColorWhite
	}

	if scaled.W < 3 {
		// Mid-flip sliver: a single column edge-on.
		for y := scaled.Y; y < scaled.Bottom(); y++ {
			dst.SetCell(scaled.X, y, '│', borderColor)
		}
		return
	}

	dst.DrawBox(scaled, borderColor)

	if card.ShowFront() {
		drawCardFront(dst, board.SymbolAsset(card.Symbol()), scaled)
	} else {
		drawCardBack(dst, scaled)
	}
}

// drawCardFront fills the card interior with rank and suit.
func drawCardFront(dst *core.Screen, sym game.Symbol, rect core.Rect) {
	color := sym.Suit.Color()

	// Rank in the top-left corner, inside the border
	if rect.W >= len(sym.Rank)+2 && rect.H >= 3 {
		dst.DrawText(rect.X+1, rect.Y+1, sym.Rank, color)
	}

	// Suit glyph centered; crown for royals one row above when there is room
	cx, cy := rect.Center()
	dst.SetCell(cx, cy, sym.Suit.Glyph(), color)
	if sym.Royal() && rect.H >= 5 {
		dst.SetCell(cx, cy-1, '♛', core.ColorGold)
	}
}

// drawCardBack fills the card interior with the back pattern.
func drawCardBack(dst *core.Screen, rect core.Rect) {
	for y := rect.Y + 1; y < rect.Bottom()-1; y++ {
		for x := rect.X + 1; x < rect.Right()-1; x++ {
			dst.SetCell(x, y, '░', core.ColorNavy)
		}
	}
	cx, cy := rect.Center()
	dst.SetCell(cx, cy, '◆', core.ColorGold)
}

// drawOverlay draws a centered boxed message over the current screen.
func drawOverlay(dst *core.Screen, lines []string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	boxW := maxLen + 6
	boxH := len(lines)*2 + 3
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGold)

	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorGold
		}
		dst.DrawTextCentered(box.Y+2+i*2, line, color)
	}
}
