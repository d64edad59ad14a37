package crakers

// Snapshot is the observable game state for tests.
type Snapshot struct {
	PlayerX, PlayerY int
	EnemyX, EnemyY   int
	Lives            int
	Score            int
	GemsLeft         int
	DashReady        bool
	Invincible       bool
	Playing          bool
	Won              bool
	Lost             bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		EnemyX:     g.enemy.X,
		EnemyY:     g.enemy.Y,
		Lives:      g.lives,
		Score:      g.score,
		GemsLeft:   g.level.GemsLeft(),
		DashReady:  g.dashCD == 0,
		Invincible: g.invincible > 0,
		Playing:    g.phase == phasePlaying,
		Won:        g.phase == phaseWon,
		Lost:       g.phase == phaseLost,
	}
}
