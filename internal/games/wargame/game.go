package wargame

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nostalgik/nostalgikit/internal/config"
	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

type phase int

const (
	phaseSelect phase = iota
	phaseBattle
	phaseDone
)

// Game adapts the battle engine to the platform interface, adding the
// class-select screen and the win/loss tally across battles.
type Game struct {
	cfg    config.WargameConfig
	battle *Battle
	rng    *rand.Rand

	phase        phase
	classCursor  int
	actionCursor int
	playerClass  int
	score        int
	wins         int
	losses       int
}

// Package-level config knobs, set by the CLI before the game starts.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom YAML config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new War Game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("wargame", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wargame"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "War Game"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	wgCfg, err := config.LoadWargame(configPath)
	if err != nil || len(wgCfg.Classes) == 0 {
		wgCfg = config.DefaultWargameConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWargamePreset(&wgCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = wgCfg

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.phase = phaseSelect
	g.classCursor = 0
	g.actionCursor = 0
	g.score = 0
	g.wins = 0
	g.losses = 0
	g.battle = nil
}

// startBattle pits the selected class against a random other class.
func (g *Game) startBattle() {
	g.playerClass = g.classCursor
	player := g.cfg.Classes[g.playerClass]

	others := make([]int, 0, len(g.cfg.Classes)-1)
	for i := range g.cfg.Classes {
		if i != g.playerClass {
			others = append(others, i)
		}
	}
	enemy := g.cfg.Classes[others[g.rng.Intn(len(others))]]

	g.battle = NewBattle(player, enemy, g.cfg.Combat.SpecialCooldown, g.rng)
	g.actionCursor = 0
	g.phase = phaseBattle
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	switch g.phase {
	case phaseSelect:
		g.stepSelect(input)
	case phaseBattle:
		g.stepBattle(input)
	case phaseDone:
		switch {
		case input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary):
			g.startBattle()
		case input.Has(core.ActionRestart) || input.Has(core.ActionSecondary):
			g.phase = phaseSelect
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepSelect(input core.InputFrame) {
	n := len(g.cfg.Classes)
	if input.Has(core.ActionUp) {
		g.classCursor = (g.classCursor - 1 + n) % n
	}
	if input.Has(core.ActionDown) {
		g.classCursor = (g.classCursor + 1) % n
	}
	if input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
		g.startBattle()
	}
}

func (g *Game) stepBattle(input core.InputFrame) {
	if input.Has(core.ActionUp) {
		g.actionCursor = (g.actionCursor - 1 + actionCount) % actionCount
	}
	if input.Has(core.ActionDown) {
		g.actionCursor = (g.actionCursor + 1) % actionCount
	}
	if input.Has(core.ActionConfirm) || input.Has(core.ActionPrimary) {
		if g.battle.PlayTurn(BattleAction(g.actionCursor)) && g.battle.Over() {
			g.finishBattle()
		}
	}
}

// finishBattle tallies the result. A victory scores the surviving HP, so
// cleaner wins rank higher on the scoreboard.
func (g *Game) finishBattle() {
	g.phase = phaseDone
	if g.battle.Won() {
		g.wins++
		g.score += g.battle.Player.HP
	} else {
		g.losses++
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf("War Game  Record: %dW-%dL  Score: %d", g.wins, g.losses, g.score))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	switch g.phase {
	case phaseSelect:
		g.renderSelect(dst)
	case phaseBattle:
		g.renderBattle(dst)
	case phaseDone:
		g.renderBattle(dst)
		if g.battle.Won() {
			dst.DrawTextCentered(dst.Height()/2, " VICTORY! ")
		} else {
			dst.DrawTextCentered(dst.Height()/2, " DEFEAT! ")
		}
		dst.DrawTextCentered(dst.Height()/2+2, " Enter: rematch   R: change fighter ")
	}
}

func (g *Game) renderSelect(dst *core.Screen) {
	dst.DrawTextCentered(3, "Choose Your Fighter")

	for i, class := range g.cfg.Classes {
		label := fmt.Sprintf("%s %s", class.Sprite, class.Name)
		if i == g.classCursor {
			dst.DrawColoredText(4, 5+i, "> "+label, core.ColorYellow)
		} else {
			dst.DrawText(4, 5+i, "  "+label)
		}
	}

	class := g.cfg.Classes[g.classCursor]
	y := 6 + len(g.cfg.Classes)
	dst.DrawText(4, y, fmt.Sprintf("HP: %d", class.HP))
	dst.DrawText(4, y+1, fmt.Sprintf("ATK: %d-%d", class.Attack.Min, class.Attack.Max))
	dst.DrawText(4, y+2, fmt.Sprintf("HEAL: %d-%d", class.Heal.Min, class.Heal.Max))
	dst.DrawText(4, y+3, fmt.Sprintf("SPECIAL: %s", class.Special.Name))

	dst.DrawText(2, dst.Height()-1, "Up/Down: select  Enter: fight")
}

func (g *Game) renderBattle(dst *core.Screen) {
	b := g.battle

	dst.DrawText(2, 2, fmt.Sprintf("ROUND %d", b.Round()))

	g.renderHealthBar(dst, 2, 4, b.Player)
	g.renderHealthBar(dst, 2, 5, b.Enemy)

	statusY := 7
	if b.Player.Defending {
		dst.DrawColoredText(2, statusY, "YOU: DEFENDING", core.ColorCyan)
	}
	if b.Enemy.Defending {
		dst.DrawColoredText(20, statusY, "ENEMY: DEFENDING", core.ColorCyan)
	}
	if b.Cooldown() > 0 {
		dst.DrawText(40, statusY, fmt.Sprintf("COOLDOWN: %d", b.Cooldown()))
	}

	// Last few log lines.
	logY := 9
	entries := b.Log()
	if len(entries) > 4 {
		entries = entries[len(entries)-4:]
	}
	for i, line := range entries {
		dst.DrawText(2, logY+i, line)
	}

	if g.phase != phaseBattle {
		return
	}

	menuY := 15
	dst.DrawText(2, menuY-1, "Choose Action:")
	for i := 0; i < actionCount; i++ {
		action := BattleAction(i)
		label := action.String()
		if action == ActionSpecial {
			label = b.Player.Class.Special.Name
			if !b.CanUse(ActionSpecial) {
				label += " (CD)"
			}
		}
		if i == g.actionCursor {
			dst.DrawColoredText(2, menuY+i, "> "+label, core.ColorYellow)
		} else {
			dst.DrawText(2, menuY+i, "  "+label)
		}
	}
}

func (g *Game) renderHealthBar(dst *core.Screen, x, y int, f Fighter) {
	const barWidth = 10
	filled := 0
	if f.MaxHP > 0 {
		filled = f.HP * barWidth / f.MaxHP
	}

	dst.DrawText(x, y, fmt.Sprintf("%-8s %3d/%3d ", f.Class.Name, f.HP, f.MaxHP))
	bx := x + 18
	dst.Set(bx, y, '[')
	for i := 0; i < barWidth; i++ {
		if i < filled {
			dst.SetCell(bx+1+i, y, '█', core.ColorGreen)
		} else {
			dst.SetCell(bx+1+i, y, '░', core.ColorGray)
		}
	}
	dst.Set(bx+1+barWidth, y, ']')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseDone && !g.battle.Won(),
	}
}
