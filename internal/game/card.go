// Package game contains the pure memory match game logic: the per-card flip
// state machine, the board's pair-matching engine, and the session state
// machine. It has no platform dependencies and advances only through
// explicit Update calls, so behavior is frame-rate independent and testable
// without real delays.
package game

import "time"

// CardState is the flip state of a single card.
type CardState int

const (
	// Hidden is face down, not flipping.
	Hidden CardState = iota
	// FlippingToVisible is animating from hidden to visible.
	FlippingToVisible
	// Visible is face up, not flipping.
	Visible
	// FlippingToHidden is animating from visible back to hidden.
	FlippingToHidden
	// Matched is permanently face up. No further transitions.
	Matched
)

func (s CardState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case FlippingToVisible:
		return "flipping_to_visible"
	case Visible:
		return "visible"
	case FlippingToHidden:
		return "flipping_to_hidden"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is a single grid cell with its face symbol and flip animation.
// All state transitions are mediated by the owning Board; disallowed
// transitions are silent no-ops, never errors.
type Card struct {
	row, col int
	symbol   SymbolID

	state        CardState
	animElapsed  time.Duration
	flipDuration time.Duration

	// Hovered is presentation-only pointer feedback. It never affects
	// matching logic and stays live even while the board is locked.
	Hovered bool
}

// NewCard creates a hidden card at the given cell.
func NewCard(row, col int, symbol SymbolID, flipDuration time.Duration) *Card {
	return &Card{
		row:          row,
		col:          col,
		symbol:       symbol,
		state:        Hidden,
		flipDuration: flipDuration,
	}
}

// Row returns the card's fixed grid row.
func (c *Card) Row() int { return c.row }

// Col returns the card's fixed grid column.
func (c *Card) Col() int { return c.col }

// Symbol returns the card's face symbol identifier.
func (c *Card) Symbol() SymbolID { return c.symbol }

// State returns the current flip state.
func (c *Card) State() CardState { return c.state }

// RequestFlipUp starts the flip-up animation. Allowed only from Hidden;
// a no-op in every other state.
func (c *Card) RequestFlipUp() {
	if c.state != Hidden {
		return
	}
	c.state = FlippingToVisible
	c.animElapsed = 0
}

// RequestFlipDown starts the flip-down animation. Allowed only from Visible;
// a no-op in every other state.
func (c *Card) RequestFlipDown() {
	if c.state != Visible {
		return
	}
	c.state = FlippingToHidden
	c.animElapsed = 0
}

// MarkMatched moves the card to the terminal Matched state. Allowed from
// Visible or mid flip-up: the pair decision lands while the second card is
// still animating. A no-op in every other state.
func (c *Card) MarkMatched() {
	if c.state != Visible && c.state != FlippingToVisible {
		return
	}
	c.state = Matched
	c.animElapsed = 0
}

// Update advances the flip animation by dt and completes the transition
// once the flip duration has elapsed. A no-op when not animating.
func (c *Card) Update(dt time.Duration) {
	if !c.IsAnimating() {
		return
	}

	c.animElapsed += dt
	if c.animElapsed < c.flipDuration {
		return
	}

	switch c.state {
	case FlippingToVisible:
		c.state = Visible
	case FlippingToHidden:
		c.state = Hidden
	}
	c.animElapsed = 0
}

// IsClickable reports whether a pointer press may flip this card.
func (c *Card) IsClickable() bool {
	return c.state == Hidden
}

// IsFaceUp reports whether the front side is showing (Visible or Matched).
func (c *Card) IsFaceUp() bool {
	return c.state == Visible || c.state == Matched
}

// IsAnimating reports whether a flip animation is in progress.
func (c *Card) IsAnimating() bool {
	return c.state == FlippingToVisible || c.state == FlippingToHidden
}

// Progress returns the normalized animation progress in [0, 1].
// Returns 0 when not animating.
func (c *Card) Progress() float64 {
	if !c.IsAnimating() || c.flipDuration <= 0 {
		return 0
	}
	p := float64(c.animElapsed) / float64(c.flipDuration)
	if p > 1 {
		p = 1
	}
	return p
}

// ShowFront reports whether the renderer should draw the front face.
// During a flip the face swaps at the animation midpoint, modeling a 3-D
// flip where the card shrinks to a sliver and grows back.
func (c *Card) ShowFront() bool {
	switch c.state {
	case Visible, Matched:
		return true
	case FlippingToVisible:
		return c.Progress() > 0.5
	case FlippingToHidden:
		return c.Progress() <= 0.5
	default:
		return false
	}
}

// ScaleFactor returns the horizontal scale for the flip animation:
// 1 → 0 over the first half, 0 → 1 over the second half.
// Returns 1 when not animating. Consumed by rendering, not by logic.
func (c *Card) ScaleFactor() float64 {
	if !c.IsAnimating() {
		return 1.0
	}
	p := c.Progress()
	if p <= 0.5 {
		return 1.0 - p*2.0
	}
	return (p - 0.5) * 2.0
}
