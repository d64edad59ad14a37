package oracle

import (
	"testing"

	"github.com/nostalgik/nostalgikit/internal/core"
)

func startedGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.startTrick()
	return g
}

func TestOracleFindsEveryNumber(t *testing.T) {
	for secret := minNumber; secret <= maxNumber; secret++ {
		g := startedGame()

		// Answer every card honestly for the secret number.
		for i := 0; i < cardCount; i++ {
			g.Answer(cards[i].Contains(secret))
		}

		snap := g.Snapshot()
		if !snap.Done {
			t.Fatalf("secret %d: not finished after %d answers", secret, cardCount)
		}
		if len(snap.Candidates) != 1 || snap.Candidates[0] != secret {
			t.Errorf("secret %d: candidates = %v, want exactly [%d]", secret, snap.Candidates, secret)
		}
		if snap.Reveal != secret {
			t.Errorf("secret %d: revealed %d", secret, snap.Reveal)
		}
		if snap.Score != revealScore {
			t.Errorf("secret %d: score = %d, want %d", secret, snap.Score, revealScore)
		}
	}
}

func TestContradictoryAnswers(t *testing.T) {
	g := startedGame()

	// Claiming the number is on both range halves (1-10 and 11-20) while
	// denying all four digit cards is impossible.
	answers := []bool{false, false, false, false, true, true}
	for _, a := range answers {
		g.Answer(a)
	}

	snap := g.Snapshot()
	if !snap.Done {
		t.Fatal("not finished")
	}
	if len(snap.Candidates) != 0 {
		t.Fatalf("candidates = %v, want none", snap.Candidates)
	}
	if snap.Reveal != 0 || snap.Score != 0 {
		t.Errorf("contradiction revealed %d with score %d", snap.Reveal, snap.Score)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver false on the result screen")
	}
}

func TestCardSetsMatchBinaryEncoding(t *testing.T) {
	// Cards A-D are the binary digit cards: number n is on card i iff bit i
	// of n is set. Cards E/F are the range halves.
	for n := minNumber; n <= maxNumber; n++ {
		for bit := 0; bit < 4; bit++ {
			want := n&(1<<bit) != 0
			if got := cards[bit].Contains(n); got != want {
				t.Errorf("%s.Contains(%d) = %v, want %v", cards[bit].Name, n, got, want)
			}
		}
		if got := cards[4].Contains(n); got != (n <= 10) {
			t.Errorf("CARD E membership wrong for %d", n)
		}
		if got := cards[5].Contains(n); got != (n >= 11) {
			t.Errorf("CARD F membership wrong for %d", n)
		}
	}
}

func TestAnswersIgnoredOutsideAsking(t *testing.T) {
	g := startedGame()
	for i := 0; i < cardCount; i++ {
		g.Answer(true)
	}
	before := g.Snapshot()
	g.Answer(true)
	now := g.Snapshot()
	if now.CardIndex != before.CardIndex || now.Reveal != before.Reveal {
		t.Error("answer accepted on the result screen")
	}
}

func TestStepAnswerMapping(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm) // leave the intro

	yes := core.NewInputFrame()
	yes.Set(core.ActionPrimary)
	no := core.NewInputFrame()
	no.Set(core.ActionSecondary)

	// Honest answers for 7 (0111, first half): yes yes yes no yes no.
	for _, f := range []core.InputFrame{yes, yes, yes, no, yes, no} {
		g.Step(f)
	}

	snap := g.Snapshot()
	if snap.Reveal != 7 {
		t.Errorf("revealed %d, want 7", snap.Reveal)
	}
}
