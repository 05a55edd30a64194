// Package layout computes the responsive board geometry: card size, per-cell
// positions, and named font sizes, all as a pure function of the window size
// and grid size. It may be recomputed on every resize event, so Compute must
// be deterministic and allocation-light. Units are pixels; the terminal
// renderer maps pixel units to character cells.
package layout

import (
	"github.com/vovakirdan/memory-match/internal/core"
)

// Options are the layout tunables. Zero values are replaced by defaults.
type Options struct {
	Spacing      int // Gap between adjacent cards
	Margin       int // Reserved border on all four sides
	HeaderHeight int // Reserved band at the top for score/controls
	MinCardSize  int // Lower clamp on the computed card size
	MaxCardSize  int // Upper clamp on the computed card size
}

// DefaultOptions returns the standard layout tunables.
func DefaultOptions() Options {
	return Options{
		Spacing:      16,
		Margin:       40,
		HeaderHeight: 100,
		MinCardSize:  40,
		MaxCardSize:  120,
	}
}

// FontSizes are the named font sizes derived from the window dimensions.
// Each is clamped so text stays legible at tiny windows and doesn't overlap
// at huge ones.
type FontSizes struct {
	Title    int // windowH/8, clamped to [32, 64]
	Subtitle int // windowH/20, clamped to [18, 32]
	Button   int // windowH/16, clamped to [16, 28]
	Score    int // windowW/40, clamped to [18, 36]
	Message  int // windowW/18, clamped to [28, 72]
}

// Layout is the computed geometry for one (window, grid) combination.
// It is a value: recomputed on resize, never mutated in place.
type Layout struct {
	WindowW, WindowH int
	GridSize         int
	CardSize         int
	Spacing          int
	GridX, GridY     int // top-left of the centered grid block
	Fonts            FontSizes
}

// Compute derives the layout for the given window and grid size. Identical
// inputs always produce identical outputs. Degenerate window sizes are
// handled by the card-size clamp, never by failing.
func Compute(windowW, windowH, gridSize int, opts Options) Layout {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}

	availW := windowW - 2*opts.Margin
	availH := windowH - 2*opts.Margin - opts.HeaderHeight

	gaps := (gridSize - 1) * opts.Spacing
	fitW := (availW - gaps) / gridSize
	fitH := (availH - gaps) / gridSize

	cardSize := core.Clamp(core.Min(fitW, fitH), opts.MinCardSize, opts.MaxCardSize)

	gridSpan := gridSize*cardSize + gaps
	gridX := opts.Margin + (availW-gridSpan)/2
	gridY := opts.Margin + opts.HeaderHeight + (availH-gridSpan)/2

	return Layout{
		WindowW:  windowW,
		WindowH:  windowH,
		GridSize: gridSize,
		CardSize: cardSize,
		Spacing:  opts.Spacing,
		GridX:    gridX,
		GridY:    gridY,
		Fonts: FontSizes{
			Title:    core.Clamp(windowH/8, 32, 64),
			Subtitle: core.Clamp(windowH/20, 18, 32),
			Button:   core.Clamp(windowH/16, 16, 28),
			Score:    core.Clamp(windowW/40, 18, 36),
			Message:  core.Clamp(windowW/18, 28, 72),
		},
	}
}

// CellRect returns the rectangle of the card at (row, col).
func (l Layout) CellRect(row, col int) core.Rect {
	step := l.CardSize + l.Spacing
	return core.NewRect(l.GridX+col*step, l.GridY+row*step, l.CardSize, l.CardSize)
}

// HitTest resolves a point to a grid cell. ok is false when the point falls
// outside every card (including in the spacing between cards).
func (l Layout) HitTest(x, y int) (row, col int, ok bool) {
	if l.CardSize <= 0 {
		return 0, 0, false
	}
	step := l.CardSize + l.Spacing

	dx := x - l.GridX
	dy := y - l.GridY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}

	col = dx / step
	row = dy / step
	if row >= l.GridSize || col >= l.GridSize {
		return 0, 0, false
	}
	// Reject points inside the spacing gap after a card.
	if dx%step >= l.CardSize || dy%step >= l.CardSize {
		return 0, 0, false
	}
	return row, col, true
}
