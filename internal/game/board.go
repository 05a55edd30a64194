package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidGridSize is returned when a board is created with a grid size
// other than the supported 4 or 6.
var ErrInvalidGridSize = errors.New("game: grid size must be 4 or 6")

// Timing holds the animation and resolution delays that drive the board.
// All delays are wall-clock durations so behavior is frame-rate independent.
type Timing struct {
	FlipDuration  time.Duration // Card flip animation length
	MismatchDelay time.Duration // How long a mismatched pair stays visible
	WinDelay      time.Duration // Pause between the last match and the win screen
}

// DefaultTiming returns the standard timings (200ms flip, 1s delays).
func DefaultTiming() Timing {
	return Timing{
		FlipDuration:  200 * time.Millisecond,
		MismatchDelay: time.Second,
		WinDelay:      time.Second,
	}
}

// pendingMismatch schedules two mismatched cards to flip back down once the
// deadline passes. The cards stay visible until then so the player can
// memorize them.
type pendingMismatch struct {
	a, b      *Card
	resolveAt time.Duration
}

// pendingWin delays the won flag after the final match so the player sees
// the last pair land.
type pendingWin struct {
	resolveAt time.Duration
}

// Board owns the full card grid, the pair-matching logic, and the
// mismatch/win timers. It is the single writer of card state: nothing
// outside this package mutates a Card directly.
type Board struct {
	gridSize int
	pairs    int
	timing   Timing
	rng      *rand.Rand

	cards   []*Card // row-major, len == gridSize²
	symbols map[SymbolID]Symbol

	faceUp       []*Card // Visible cards awaiting resolution, 0..2
	matchedPairs int
	moves        int // pair evaluations attempted

	mismatch *pendingMismatch
	win      *pendingWin
	locked   bool
	won      bool

	now time.Duration // monotonic time of the last Update call
}

// NewBoard creates and shuffles a board. gridSize must be 4 or 6; any other
// value fails with ErrInvalidGridSize.
func NewBoard(gridSize int, seed int64, timing Timing) (*Board, error) {
	if gridSize != 4 && gridSize != 6 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, gridSize)
	}

	b := &Board{
		gridSize: gridSize,
		pairs:    gridSize * gridSize / 2,
		timing:   timing,
		rng:      rand.New(rand.NewSource(seed)),
	}
	b.initialize()
	return b, nil
}

// initialize builds a fresh shuffled grid and clears all counters and timers.
func (b *Board) initialize() {
	symbols, byID := SymbolSet(b.pairs)
	b.symbols = byID

	// Two cards per symbol, uniformly shuffled, assigned row-major.
	ids := make([]SymbolID, 0, 2*b.pairs)
	for _, sym := range symbols {
		ids = append(ids, sym.ID, sym.ID)
	}
	b.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	b.cards = make([]*Card, 0, len(ids))
	for row := 0; row < b.gridSize; row++ {
		for col := 0; col < b.gridSize; col++ {
			b.cards = append(b.cards, NewCard(row, col, ids[row*b.gridSize+col], b.timing.FlipDuration))
		}
	}

	b.faceUp = b.faceUp[:0]
	b.matchedPairs = 0
	b.moves = 0
	b.mismatch = nil
	b.win = nil
	b.locked = false
	b.won = false
}

// Reset re-shuffles the board with the same grid size. Any pending mismatch
// or win resolution is discarded; all cards return to Hidden.
func (b *Board) Reset() {
	b.initialize()
}

// GridSize returns the board's edge length (4 or 6).
func (b *Board) GridSize() int { return b.gridSize }

// PairsCount returns the number of pairs on the board.
func (b *Board) PairsCount() int { return b.pairs }

// MatchedPairs returns the number of pairs matched so far.
func (b *Board) MatchedPairs() int { return b.matchedPairs }

// Moves returns the number of pair evaluations attempted so far.
func (b *Board) Moves() int { return b.moves }

// Won reports whether the win delay has resolved. A won board stays input
// locked until Reset.
func (b *Board) Won() bool { return b.won }

// InputLocked reports whether new flips are currently suppressed.
func (b *Board) InputLocked() bool { return b.locked }

// Cards returns the cards in row-major order. Callers must treat the cards
// as read-only; all mutation goes through Board methods.
func (b *Board) Cards() []*Card { return b.cards }

// CardAt returns the card at (row, col), or nil if out of range.
func (b *Board) CardAt(row, col int) *Card {
	if row < 0 || row >= b.gridSize || col < 0 || col >= b.gridSize {
		return nil
	}
	return b.cards[row*b.gridSize+col]
}

// SymbolAsset resolves a symbol ID to its visual asset for rendering.
// The matching logic itself only compares IDs.
func (b *Board) SymbolAsset(id SymbolID) Symbol {
	return b.symbols[id]
}

// HandlePointerDown flips the card at (row, col) face up and, when it is the
// second face-up card, evaluates the pair synchronously so a third click can
// never sneak in before the pair is known. Every invalid click (locked
// board, won board, out-of-range cell, non-clickable card, two cards already
// up) is a silent no-op: clicking is user-driven and must never error.
func (b *Board) HandlePointerDown(row, col int) {
	if b.locked || b.won || len(b.faceUp) >= 2 {
		return
	}

	card := b.CardAt(row, col)
	if card == nil || !card.IsClickable() {
		return
	}
	for _, up := range b.faceUp {
		if up == card {
			return
		}
	}

	card.RequestFlipUp()
	b.faceUp = append(b.faceUp, card)

	if len(b.faceUp) == 2 {
		b.evaluatePair()
	}
}

// evaluatePair resolves the two face-up cards. A match commits immediately;
// its visual consequence (the win screen) and a mismatch's consequence
// (flipping back down) are deferred behind wall-clock deadlines.
func (b *Board) evaluatePair() {
	a, c := b.faceUp[0], b.faceUp[1]
	b.moves++

	if a.Symbol() == c.Symbol() {
		a.MarkMatched()
		c.MarkMatched()
		b.matchedPairs++
		b.faceUp = b.faceUp[:0]

		if b.matchedPairs == b.pairs {
			b.win = &pendingWin{resolveAt: b.now + b.timing.WinDelay}
			b.locked = true
		}
		return
	}

	// Keep the pair visible until the deadline so the player can see it.
	b.mismatch = &pendingMismatch{a: a, b: c, resolveAt: b.now + b.timing.MismatchDelay}
	b.locked = true
}

// Update advances the board by one tick. Card animations always run first;
// mismatch and win deadlines are checked afterwards, in that order.
func (b *Board) Update(now, dt time.Duration) {
	b.now = now

	for _, card := range b.cards {
		card.Update(dt)
	}

	if b.mismatch != nil && now >= b.mismatch.resolveAt {
		// Only flip down cards still Visible; a match can never have
		// intervened because the board was locked.
		if b.mismatch.a.State() == Visible {
			b.mismatch.a.RequestFlipDown()
		}
		if b.mismatch.b.State() == Visible {
			b.mismatch.b.RequestFlipDown()
		}
		b.faceUp = b.faceUp[:0]
		b.mismatch = nil
		b.locked = false
	}

	if b.win != nil && now >= b.win.resolveAt {
		b.won = true
		b.win = nil
		// The board stays locked once won, until Reset.
	}
}

// countMatched returns the number of cards in state Matched.
func (b *Board) countMatched() int {
	n := 0
	for _, card := range b.cards {
		if card.State() == Matched {
			n++
		}
	}
	return n
}

// SetHover updates the presentation-only hover flag: the card at (row, col)
// becomes hovered, every other card loses the flag. Hover stays live even
// while input is locked since it has no effect on logic. Passing an
// out-of-range cell clears all hover state.
func (b *Board) SetHover(row, col int) {
	target := b.CardAt(row, col)
	for _, card := range b.cards {
		card.Hovered = card == target
	}
}
