// Package river implements the wolf/goat/cabbage river-crossing puzzle. The
// farmer rows a two-seat boat between banks; leaving the wolf with the goat
// or the goat with the cabbage unattended loses the game.
package river

import (
	"fmt"

	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

// Item is one of the four characters of the puzzle.
type Item int

const (
	Farmer Item = iota
	Wolf
	Goat
	Cabbage

	itemCount = 4
)

// String returns the display name of the item.
func (i Item) String() string {
	switch i {
	case Farmer:
		return "Farmer"
	case Wolf:
		return "Wolf"
	case Goat:
		return "Goat"
	case Cabbage:
		return "Cabbage"
	default:
		return "?"
	}
}

func (i Item) icon() rune {
	switch i {
	case Farmer:
		return 'F'
	case Wolf:
		return 'W'
	case Goat:
		return 'G'
	case Cabbage:
		return 'C'
	default:
		return '?'
	}
}

// Bank identifies a river bank.
type Bank int

const (
	West Bank = iota
	East
)

func (b Bank) String() string {
	if b == West {
		return "west"
	}
	return "east"
}

// Opposite returns the other bank.
func (b Bank) Opposite() Bank {
	if b == West {
		return East
	}
	return West
}

type phase int

const (
	phaseIntro phase = iota
	phasePlaying
	phaseWon
	phaseLost
)

// The optimal solution takes seven crossings; the score starts from a full
// bonus there and shrinks with every extra move.
const (
	optimalMoves    = 7
	perfectScore    = 100
	extraMoveCost   = 5
	minimumWinScore = 10
)

// Game implements the river-crossing puzzle.
type Game struct {
	banks    [itemCount]Bank // banks[item] = which side it is on
	boat     Bank
	moves    int
	cursor   int
	phase    phase
	lossItem [2]Item // the pair that caused the loss
	score    int
}

// New creates a new river-crossing game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("river", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "river"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "River Crossing"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.phase = phaseIntro
	g.startPuzzle()
}

func (g *Game) startPuzzle() {
	for i := range g.banks {
		g.banks[i] = West
	}
	g.boat = West
	g.moves = 0
	g.cursor = 0
	g.score = 0
}

// cargoOptions lists what the farmer can take on the next crossing: the
// solo option (represented as Farmer) followed by every non-farmer item on
// the boat's bank. Empty when the farmer is on the other bank.
func (g *Game) cargoOptions() []Item {
	if g.banks[Farmer] != g.boat {
		return nil
	}
	options := []Item{Farmer}
	for i := Wolf; i <= Cabbage; i++ {
		if g.banks[i] == g.boat {
			options = append(options, i)
		}
	}
	return options
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseIntro:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
			g.phase = phasePlaying
		}
	case phasePlaying:
		g.stepPlaying(input)
	case phaseWon, phaseLost:
		if input.Has(core.ActionRestart) || input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
			g.startPuzzle()
			g.phase = phasePlaying
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(input core.InputFrame) {
	options := g.cargoOptions()

	if len(options) > 0 {
		if g.cursor >= len(options) {
			g.cursor = 0
		}
		if input.Has(core.ActionUp) {
			g.cursor = (g.cursor - 1 + len(options)) % len(options)
		}
		if input.Has(core.ActionDown) {
			g.cursor = (g.cursor + 1) % len(options)
		}
	}

	if input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
		g.executeCrossing(options)
	}
}

// executeCrossing moves the boat to the opposite bank. With the farmer
// aboard, the selected cargo crosses too; without him only the empty boat
// moves, exactly as the original allowed.
func (g *Game) executeCrossing(options []Item) {
	if len(options) == 0 {
		g.boat = g.boat.Opposite()
		g.moves++
		return
	}

	cargo := options[g.cursor]
	g.banks[Farmer] = g.banks[Farmer].Opposite()
	if cargo != Farmer {
		g.banks[cargo] = g.banks[cargo].Opposite()
	}
	g.boat = g.boat.Opposite()
	g.moves++
	g.cursor = 0

	if pair, lost := g.unattendedConflict(); lost {
		g.lossItem = pair
		g.phase = phaseLost
		return
	}
	if g.solved() {
		g.score = winScore(g.moves)
		g.phase = phaseWon
	}
}

// unattendedConflict reports the predator/prey pair left alone on a bank
// without the farmer, if any.
func (g *Game) unattendedConflict() ([2]Item, bool) {
	for _, bank := range []Bank{West, East} {
		if g.banks[Farmer] == bank {
			continue
		}
		if g.banks[Wolf] == bank && g.banks[Goat] == bank {
			return [2]Item{Wolf, Goat}, true
		}
		if g.banks[Goat] == bank && g.banks[Cabbage] == bank {
			return [2]Item{Goat, Cabbage}, true
		}
	}
	return [2]Item{}, false
}

func (g *Game) solved() bool {
	for i := range g.banks {
		if g.banks[i] != East {
			return false
		}
	}
	return true
}

// winScore rewards fewer crossings: the full bonus at the seven-move
// optimum, less for every extra crossing, never below a small floor.
func winScore(moves int) int {
	score := perfectScore - (moves-optimalMoves)*extraMoveCost
	if score < minimumWinScore {
		score = minimumWinScore
	}
	return score
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf("River Crossing  Moves: %d", g.moves))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	switch g.phase {
	case phaseIntro:
		dst.DrawTextCentered(dst.Height()/2-2, "Take everyone across the river.")
		dst.DrawTextCentered(dst.Height()/2-1, "Never leave the wolf with the goat,")
		dst.DrawTextCentered(dst.Height()/2, "or the goat with the cabbage.")
		dst.DrawTextCentered(dst.Height()/2+2, "Press Enter to start")
		return
	case phaseLost:
		g.renderScene(dst)
		dst.DrawTextCentered(dst.Height()/2-1, fmt.Sprintf(" The %s got the %s! ", g.lossItem[0], g.lossItem[1]))
		dst.DrawTextCentered(dst.Height()/2+1, " Press R to try again ")
		return
	case phaseWon:
		g.renderScene(dst)
		dst.DrawTextCentered(dst.Height()/2-1, fmt.Sprintf(" Solved in %d moves! Score: %d ", g.moves, g.score))
		dst.DrawTextCentered(dst.Height()/2+1, " Press R to play again ")
		return
	}

	g.renderScene(dst)
	g.renderOptions(dst)
}

// renderScene draws the two banks, the river, and the boat.
func (g *Game) renderScene(dst *core.Screen) {
	mid := dst.Width() / 2
	bankY := 4

	dst.DrawText(2, 3, "WEST BANK")
	dst.DrawText(dst.Width()-11, 3, "EAST BANK")

	wx, ex := 2, dst.Width()-11
	for i := Farmer; i <= Cabbage; i++ {
		if g.banks[i] == West {
			dst.SetCell(wx, bankY, i.icon(), core.ColorGreen)
			wx += 2
		} else {
			dst.SetCell(ex, bankY, i.icon(), core.ColorGreen)
			ex += 2
		}
	}

	for x := mid - 8; x < mid+8; x++ {
		dst.SetCell(x, bankY+1, '~', core.ColorBlue)
	}
	boatX := mid - 6
	if g.boat == East {
		boatX = mid + 3
	}
	dst.DrawColoredText(boatX, bankY+1, "\\__/", core.ColorYellow)
}

// renderOptions draws the cargo selection list.
func (g *Game) renderOptions(dst *core.Screen) {
	y := 8
	options := g.cargoOptions()

	if len(options) == 0 {
		dst.DrawText(2, y, "The boat is on the other side.")
		dst.DrawText(2, y+1, "Press Enter to bring it back.")
		return
	}

	dst.DrawText(2, y, "Choose companion:")
	for i, opt := range options {
		label := opt.String()
		if opt == Farmer {
			label = "Alone"
		}
		if i == g.cursor {
			dst.DrawColoredText(2, y+1+i, "> "+label, core.ColorYellow)
		} else {
			dst.DrawText(2, y+1+i, "  "+label)
		}
	}
	dst.DrawText(2, dst.Height()-1, "Up/Down: select  Enter: cross")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseWon || g.phase == phaseLost,
	}
}
