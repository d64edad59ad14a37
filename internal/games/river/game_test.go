package river

import (
	"testing"

	"github.com/nostalgik/nostalgikit/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func startGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	g.Step(frame(core.ActionConfirm))
	if g.phase != phasePlaying {
		t.Fatal("game did not start")
	}
	return g
}

// cross selects the given cargo (Farmer means crossing alone) and confirms.
func cross(t *testing.T, g *Game, cargo Item) {
	t.Helper()
	options := g.cargoOptions()
	for i, opt := range options {
		if opt == cargo {
			g.cursor = i
			g.Step(frame(core.ActionConfirm))
			return
		}
	}
	t.Fatalf("cargo %v not available among %v", cargo, options)
}

func TestOptimalSolutionWinsWithFullScore(t *testing.T) {
	g := startGame(t)

	// The classic seven-move solution.
	cross(t, g, Goat)
	cross(t, g, Farmer)
	cross(t, g, Wolf)
	cross(t, g, Goat)
	cross(t, g, Cabbage)
	cross(t, g, Farmer)
	cross(t, g, Goat)

	snap := g.Snapshot()
	if !snap.Won {
		t.Fatalf("not won after the optimal solution: %+v", snap)
	}
	if snap.Moves != 7 {
		t.Errorf("moves = %d, want 7", snap.Moves)
	}
	if snap.Score != perfectScore {
		t.Errorf("score = %d, want %d", snap.Score, perfectScore)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver false after win")
	}
}

func TestExtraMovesCostScore(t *testing.T) {
	g := startGame(t)

	// Waste two crossings (goat there and back) before solving.
	cross(t, g, Goat)
	cross(t, g, Goat)
	cross(t, g, Goat)
	cross(t, g, Farmer)
	cross(t, g, Wolf)
	cross(t, g, Goat)
	cross(t, g, Cabbage)
	cross(t, g, Farmer)
	cross(t, g, Goat)

	snap := g.Snapshot()
	if !snap.Won {
		t.Fatalf("not won: %+v", snap)
	}
	if snap.Moves != 9 {
		t.Fatalf("moves = %d, want 9", snap.Moves)
	}
	if want := perfectScore - 2*extraMoveCost; snap.Score != want {
		t.Errorf("score = %d, want %d", snap.Score, want)
	}
}

func TestUnattendedPairsLose(t *testing.T) {
	tests := []struct {
		name  string
		cargo Item
		pair  [2]Item
	}{
		{"wolf eats goat", Cabbage, [2]Item{Wolf, Goat}},
		{"goat eats cabbage", Wolf, [2]Item{Goat, Cabbage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startGame(t)
			cross(t, g, tt.cargo)

			if g.phase != phaseLost {
				t.Fatalf("phase = %v, want lost", g.phase)
			}
			if g.lossItem != tt.pair {
				t.Errorf("loss pair = %v, want %v", g.lossItem, tt.pair)
			}
		})
	}
}

func TestGoatFirstIsSafe(t *testing.T) {
	g := startGame(t)
	cross(t, g, Goat)

	if g.phase != phasePlaying {
		t.Fatalf("phase = %v after the safe opening move", g.phase)
	}
	snap := g.Snapshot()
	if snap.Banks[Goat] != East || snap.Banks[Farmer] != East {
		t.Error("goat and farmer did not cross")
	}
	if snap.Banks[Wolf] != West || snap.Banks[Cabbage] != West {
		t.Error("wolf or cabbage moved unexpectedly")
	}
}

func TestEmptyBoatCrossing(t *testing.T) {
	g := startGame(t)

	// Strand the boat on the far bank by hand; the only action left is
	// rowing it back empty.
	g.boat = East
	if opts := g.cargoOptions(); opts != nil {
		t.Fatalf("cargo options with the farmer on the other bank: %v", opts)
	}
	g.Step(frame(core.ActionConfirm))

	snap := g.Snapshot()
	if snap.Boat != West {
		t.Error("empty boat did not return")
	}
	if snap.Moves != 1 {
		t.Errorf("moves = %d, want 1", snap.Moves)
	}
	if snap.Banks[Farmer] != West {
		t.Error("empty crossing moved the farmer")
	}
}

func TestRestartAfterLoss(t *testing.T) {
	g := startGame(t)
	cross(t, g, Wolf) // goat eats cabbage

	g.Step(frame(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Lost || snap.Moves != 0 {
		t.Errorf("restart did not reset: %+v", snap)
	}
	for i, bank := range snap.Banks {
		if bank != West {
			t.Errorf("item %v not back on the west bank", Item(i))
		}
	}
}

func TestCursorWraps(t *testing.T) {
	g := startGame(t)

	// Four options at the start: Alone, Wolf, Goat, Cabbage.
	g.Step(frame(core.ActionUp))
	if g.cursor != 3 {
		t.Errorf("cursor = %d after wrapping up, want 3", g.cursor)
	}
	g.Step(frame(core.ActionDown))
	if g.cursor != 0 {
		t.Errorf("cursor = %d after wrapping down, want 0", g.cursor)
	}
}
