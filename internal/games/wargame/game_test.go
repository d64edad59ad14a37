package wargame

import (
	"strings"
	"testing"

	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("wargame") {
		t.Fatal("wargame not registered")
	}
}

func TestClassSelectionFlow(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5})

	if !g.Snapshot().Selecting {
		t.Fatal("not on the class-select screen after Reset")
	}

	g.Step(frame(core.ActionDown))
	if g.classCursor != 1 {
		t.Errorf("cursor = %d after down, want 1", g.classCursor)
	}
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionUp))
	if g.classCursor != len(g.cfg.Classes)-1 {
		t.Errorf("cursor = %d, want wrap to %d", g.classCursor, len(g.cfg.Classes)-1)
	}

	g.Step(frame(core.ActionConfirm))
	snap := g.Snapshot()
	if !snap.InBattle {
		t.Fatal("battle did not start")
	}
	if snap.Round != 1 {
		t.Errorf("round = %d, want 1", snap.Round)
	}
	if g.battle.Player.Class.ID == g.battle.Enemy.Class.ID {
		t.Error("enemy drawn from the player's own class")
	}
}

func TestBattleToCompletion(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 9})
	g.Step(frame(core.ActionConfirm)) // pick the first class

	for i := 0; i < 500 && g.Snapshot().InBattle; i++ {
		g.Step(frame(core.ActionConfirm)) // attack (cursor stays at 0)
	}

	snap := g.Snapshot()
	if !snap.Done {
		t.Fatal("battle never finished")
	}
	if snap.Wins+snap.Losses != 1 {
		t.Errorf("tally = %dW-%dL, want exactly one result", snap.Wins, snap.Losses)
	}
	if snap.Wins == 1 && snap.Score != g.battle.Player.HP {
		t.Errorf("victory score = %d, want surviving HP %d", snap.Score, g.battle.Player.HP)
	}
	if snap.Losses == 1 && snap.Score != 0 {
		t.Errorf("defeat score = %d, want 0", snap.Score)
	}

	// R returns to class select for a fresh tally-preserving run.
	g.Step(frame(core.ActionRestart))
	if !g.Snapshot().Selecting {
		t.Error("restart did not return to class select")
	}
}

func TestRenderBattleScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24})
	g.Step(frame(core.ActionConfirm))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"ROUND 1", "Choose Action:", "ATTACK", "DEFEND"} {
		if !strings.Contains(out, want) {
			t.Errorf("battle render missing %q", want)
		}
	}
}
