// Package oracle implements the number-oracle card trick: the player thinks
// of a number from 1 to 20, answers yes/no for six cards, and the oracle
// names the number by intersecting or subtracting each card's set.
package oracle

import (
	"fmt"
	"math/rand"

	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

const (
	minNumber = 1
	maxNumber = 20
	cardCount = 6

	revealScore = 20
)

// Card is a named set of numbers, stored as a bitmask over 1..20 (bit n-1
// represents the number n).
type Card struct {
	Name    string
	Numbers uint32
}

// cards is the fixed deck of the original trick: four binary-digit cards
// plus the two range halves.
var cards = [cardCount]Card{
	{Name: "CARD A", Numbers: maskOf(1, 3, 5, 7, 9, 11, 13, 15, 17, 19)},
	{Name: "CARD B", Numbers: maskOf(2, 3, 6, 7, 10, 11, 14, 15, 18, 19)},
	{Name: "CARD C", Numbers: maskOf(4, 5, 6, 7, 12, 13, 14, 15, 20)},
	{Name: "CARD D", Numbers: maskOf(8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)},
	{Name: "CARD E", Numbers: maskOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
	{Name: "CARD F", Numbers: maskOf(11, 12, 13, 14, 15, 16, 17, 18, 19, 20)},
}

func maskOf(numbers ...int) uint32 {
	var m uint32
	for _, n := range numbers {
		m |= 1 << (n - 1)
	}
	return m
}

func allNumbers() uint32 {
	return maskOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
}

// Contains reports whether n is on the card.
func (c Card) Contains(n int) bool {
	if n < minNumber || n > maxNumber {
		return false
	}
	return c.Numbers&(1<<(n-1)) != 0
}

// List returns the card's numbers in ascending order.
func (c Card) List() []int {
	var out []int
	for n := minNumber; n <= maxNumber; n++ {
		if c.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

type phase int

const (
	phaseIntro phase = iota
	phaseAsking
	phaseResult
)

// Game implements the number oracle.
type Game struct {
	candidates uint32
	cardIndex  int
	phase      phase
	reveal     int // 0 when the candidate set came up empty
	score      int
	rng        *rand.Rand
}

// New creates a new oracle game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("oracle", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "oracle"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Number Oracle"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.startTrick()
	g.phase = phaseIntro
}

func (g *Game) startTrick() {
	g.candidates = allNumbers()
	g.cardIndex = 0
	g.reveal = 0
	g.score = 0
	g.phase = phaseAsking
}

// Answer processes a yes/no response to the current card: yes intersects
// the candidate set with the card, no subtracts it. The sixth answer moves
// to the result.
func (g *Game) Answer(onCard bool) {
	if g.phase != phaseAsking {
		return
	}
	card := cards[g.cardIndex]
	if onCard {
		g.candidates &= card.Numbers
	} else {
		g.candidates &^= card.Numbers
	}
	g.cardIndex++
	if g.cardIndex >= cardCount {
		g.finish()
	}
}

// finish picks the revealed number from the surviving candidates, or
// records the contradiction when none survive.
func (g *Game) finish() {
	g.phase = phaseResult

	var remaining []int
	for n := minNumber; n <= maxNumber; n++ {
		if g.candidates&(1<<(n-1)) != 0 {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) == 0 {
		g.reveal = 0
		return
	}
	g.reveal = remaining[g.rng.Intn(len(remaining))]
	g.score = revealScore
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseIntro:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
			g.startTrick()
		}
	case phaseAsking:
		switch {
		case input.Has(core.ActionPrimary) || input.Has(core.ActionConfirm):
			g.Answer(true)
		case input.Has(core.ActionSecondary):
			g.Answer(false)
		}
	case phaseResult:
		if input.Has(core.ActionRestart) || input.Has(core.ActionConfirm) {
			g.startTrick()
		}
	}
	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, "Number Oracle")
	dst.DrawHLine(0, 1, dst.Width(), '─')

	switch g.phase {
	case phaseIntro:
		dst.DrawTextCentered(dst.Height()/2-3, "Think of a number from 1 to 20.")
		dst.DrawTextCentered(dst.Height()/2-1, "I will show you six magic cards.")
		dst.DrawTextCentered(dst.Height()/2, "Tell me if your number is on each one.")
		dst.DrawTextCentered(dst.Height()/2+2, "Press Enter to begin")

	case phaseAsking:
		card := cards[g.cardIndex]
		dst.DrawTextCentered(3, fmt.Sprintf("CARD %d/%d", g.cardIndex+1, cardCount))
		dst.DrawTextCentered(5, card.Name)

		numbers := card.List()
		for i, n := range numbers {
			row := i / 5
			col := i % 5
			x := dst.Width()/2 - 12 + col*5
			dst.DrawColoredText(x, 7+row*2, fmt.Sprintf("%2d", n), core.ColorCyan)
		}

		dst.DrawTextCentered(dst.Height()-4, "Is your number on this card?")
		dst.DrawTextCentered(dst.Height()-2, "X = yes   Y = no")

	case phaseResult:
		if g.reveal == 0 {
			dst.DrawTextCentered(dst.Height()/2-2, "The oracle cannot read your mind.")
			dst.DrawTextCentered(dst.Height()/2, "Did you change your number?")
		} else {
			dst.DrawTextCentered(dst.Height()/2-2, "THE ORACLE SPEAKS:")
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf(">> %d <<", g.reveal))
		}
		dst.DrawTextCentered(dst.Height()-2, "Press R to play again")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseResult,
	}
}
