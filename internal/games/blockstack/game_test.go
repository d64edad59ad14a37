package blockstack

import (
	"strings"
	"testing"

	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 42}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("blockstack") {
		t.Fatal("blockstack not registered")
	}
	g, err := registry.Create("blockstack")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "blockstack" || g.Title() != "Block Stack" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGravityAccumulator(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	start, ok := g.engine.Active()
	if !ok {
		t.Fatal("no active piece after Reset")
	}

	// At 30 ticks/s each step adds ~33ms; the level-1 drop delay is 700ms.
	// No descent may happen in the first 20 steps (~667ms), and exactly one
	// must have happened by step 25 (~833ms).
	empty := core.NewInputFrame()
	for i := 0; i < 20; i++ {
		g.Step(empty)
	}
	p, _ := g.engine.Active()
	if p.Y != start.Y {
		t.Fatalf("piece descended before the drop delay elapsed")
	}

	for i := 0; i < 5; i++ {
		g.Step(empty)
	}
	p, _ = g.engine.Active()
	if p.Y != start.Y+1 {
		t.Errorf("piece at y=%d after crossing the drop delay, want %d", p.Y, start.Y+1)
	}
}

func TestStepMapsActions(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	start, _ := g.engine.Active()

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)
	p, _ := g.engine.Active()
	if p.X != start.X-1 {
		t.Errorf("left: x=%d, want %d", p.X, start.X-1)
	}

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	g.Step(drop)
	if g.engine.Score() == 0 {
		t.Error("hard drop scored nothing")
	}
}

func TestPauseAndState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("state not paused after pause action")
	}

	// Gravity must not advance the piece while paused.
	p, _ := g.engine.Active()
	empty := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(empty)
	}
	after, _ := g.engine.Active()
	if after != p {
		t.Error("piece moved while paused")
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("state still paused after second pause action")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.engine.phase = PhaseGameOver
	g.engine.active = nil

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	if res.State.GameOver {
		t.Fatal("still game over after restart")
	}
	if g.engine.Phase() != PhaseFalling {
		t.Errorf("phase = %v after restart", g.engine.Phase())
	}
}

func TestRenderShowsFieldAndHUD(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("empty render")
	}
	for _, want := range []string{"Block Stack", "Score: 0", "NEXT", "│"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
