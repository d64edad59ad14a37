package wargame

// Snapshot is the observable game state for tests.
type Snapshot struct {
	Selecting bool
	InBattle  bool
	Done      bool

	Round    int
	PlayerHP int
	EnemyHP  int
	Wins     int
	Losses   int
	Score    int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Selecting: g.phase == phaseSelect,
		InBattle:  g.phase == phaseBattle,
		Done:      g.phase == phaseDone,
		Wins:      g.wins,
		Losses:    g.losses,
		Score:     g.score,
	}
	if g.battle != nil {
		s.Round = g.battle.Round()
		s.PlayerHP = g.battle.Player.HP
		s.EnemyHP = g.battle.Enemy.HP
	}
	return s
}
