package oracle

// Snapshot is the observable game state for tests.
type Snapshot struct {
	Candidates []int
	CardIndex  int
	Reveal     int
	Score      int
	Done       bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	var remaining []int
	for n := minNumber; n <= maxNumber; n++ {
		if g.candidates&(1<<(n-1)) != 0 {
			remaining = append(remaining, n)
		}
	}
	return Snapshot{
		Candidates: remaining,
		CardIndex:  g.cardIndex,
		Reveal:     g.reveal,
		Score:      g.score,
		Done:       g.phase == phaseResult,
	}
}
