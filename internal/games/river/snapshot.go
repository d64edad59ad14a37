package river

// Snapshot is the observable game state for tests.
type Snapshot struct {
	Banks  [itemCount]Bank
	Boat   Bank
	Moves  int
	Cursor int
	Score  int
	Won    bool
	Lost   bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Banks:  g.banks,
		Boat:   g.boat,
		Moves:  g.moves,
		Cursor: g.cursor,
		Score:  g.score,
		Won:    g.phase == phaseWon,
		Lost:   g.phase == phaseLost,
	}
}
