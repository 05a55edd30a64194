package game

// BoardSnapshot captures the observable board state for determinism testing.
type BoardSnapshot struct {
	GridSize     int
	MatchedPairs int
	Moves        int
	FaceUpCount  int
	Locked       bool
	Won          bool
	Symbols      []SymbolID // row-major symbol assignment
	States       []CardState
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() BoardSnapshot {
	snap := BoardSnapshot{
		GridSize:     b.gridSize,
		MatchedPairs: b.matchedPairs,
		Moves:        b.moves,
		FaceUpCount:  len(b.faceUp),
		Locked:       b.locked,
		Won:          b.won,
		Symbols:      make([]SymbolID, 0, len(b.cards)),
		States:       make([]CardState, 0, len(b.cards)),
	}
	for _, card := range b.cards {
		snap.Symbols = append(snap.Symbols, card.Symbol())
		snap.States = append(snap.States, card.State())
	}
	return snap
}
