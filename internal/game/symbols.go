package game

import "github.com/vovakirdan/memory-match/internal/core"

// Suit is one of the four playing card suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Glyph returns the unicode character for the suit.
func (s Suit) Glyph() rune {
	switch s {
	case Spades:
		return '♠'
	case Hearts:
		return '♥'
	case Diamonds:
		return '♦'
	case Clubs:
		return '♣'
	default:
		return '?'
	}
}

// Color returns the display color for symbols of this suit.
func (s Suit) Color() core.Color {
	switch s {
	case Hearts, Diamonds:
		return core.ColorBrightRed
	default:
		return core.ColorBrightWhite
	}
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// SymbolID uniquely identifies a card face. The matching engine only ever
// compares IDs for equality; rank and suit structure is for display.
type SymbolID string

// Symbol is the visual asset for one card face: a rank plus a suit.
// Royal ranks (K, Q) additionally carry a crown marker.
type Symbol struct {
	ID   SymbolID
	Rank string
	Suit Suit
}

// Royal reports whether the symbol gets a crown decoration.
func (s Symbol) Royal() bool {
	return s.Rank == "K" || s.Rank == "Q"
}

// symbolDefs lists the 18 suit-differentiated card faces, face cards first,
// then number cards alternating suits so equal ranks stay distinguishable.
var symbolDefs = []Symbol{
	{Rank: "A", Suit: Spades},
	{Rank: "K", Suit: Hearts},
	{Rank: "Q", Suit: Diamonds},
	{Rank: "J", Suit: Clubs},
	{Rank: "10", Suit: Spades},
	{Rank: "10", Suit: Hearts},
	{Rank: "9", Suit: Diamonds},
	{Rank: "9", Suit: Clubs},
	{Rank: "8", Suit: Spades},
	{Rank: "8", Suit: Hearts},
	{Rank: "7", Suit: Diamonds},
	{Rank: "7", Suit: Clubs},
	{Rank: "6", Suit: Spades},
	{Rank: "6", Suit: Hearts},
	{Rank: "5", Suit: Diamonds},
	{Rank: "5", Suit: Clubs},
	{Rank: "4", Suit: Spades},
	{Rank: "4", Suit: Hearts},
}

func init() {
	for i := range symbolDefs {
		symbolDefs[i].ID = SymbolID(symbolDefs[i].Rank + "_" + symbolDefs[i].Suit.String())
	}
}

// MaxPairs is the largest pair count a symbol set can supply.
const MaxPairs = 18

// SymbolSet returns the first pairCount symbols together with a lookup from
// ID to symbol. Returns at most MaxPairs symbols.
func SymbolSet(pairCount int) ([]Symbol, map[SymbolID]Symbol) {
	if pairCount > len(symbolDefs) {
		pairCount = len(symbolDefs)
	}
	symbols := make([]Symbol, pairCount)
	copy(symbols, symbolDefs[:pairCount])

	byID := make(map[SymbolID]Symbol, pairCount)
	for _, sym := range symbols {
		byID[sym.ID] = sym
	}
	return symbols, byID
}
