package crakers

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

type gamePhase int

const (
	phaseIntro gamePhase = iota
	phasePlaying
	phaseWon
	phaseLost
)

// Game holds one run: the generated level, the player, and the patrolling
// enemy. All timing is counted in simulation ticks.
type Game struct {
	level *Level
	enemy Enemy

	player     point
	lives      int
	lastDir    point
	invincible int // ticks of post-hit invincibility remaining
	dashCD     int // ticks until the dash is ready again

	score int
	phase gamePhase
	rng   *rand.Rand

	// tick counts derived from the tick rate at Reset
	enemyInterval  int
	dashCooldown   int
	invincibleSpan int
}

// New creates a new Crakers game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("crakers", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crakers"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Crakers"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	// Enemy steps every half second, dash recharges in three, and a hit
	// grants a second and a half of invincibility.
	g.enemyInterval = rate / 2
	if g.enemyInterval < 1 {
		g.enemyInterval = 1
	}
	g.dashCooldown = rate * 3
	g.invincibleSpan = rate * 3 / 2

	g.newRun()
	g.phase = phaseIntro
}

// newRun regenerates the arena and places the player and enemy at their
// spawn corners.
func (g *Game) newRun() {
	g.level = generateLevel(g.rng)
	g.player = point{2, 2}
	g.lives = playerLives
	g.lastDir = point{0, 1}
	g.invincible = 0
	g.dashCD = 0
	g.score = 0

	patrol := []point{
		{gridWidth - 3, 2},
		{gridWidth - 3, gridHeight - 3},
		{2, gridHeight - 3},
		{2, 2},
	}
	g.enemy = newEnemy(gridWidth-3, 2, patrol)
	g.phase = phasePlaying
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
		if input.Has(core.ActionRestart) || input.Has(core.ActionConfirm) {
			g.newRun()
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(input core.InputFrame) {
	dir := directionOf(input)
	if dir != (point{}) {
		g.lastDir = dir
		g.movePlayer(dir)
	}

	if input.Has(core.ActionDrop) && g.dashCD == 0 {
		for i := 0; i < dashDistance; i++ {
			if !g.movePlayer(g.lastDir) {
				break
			}
		}
		g.dashCD = g.dashCooldown
	}

	g.enemy.update(g.level, g.enemyInterval)
	g.checkEnemyContact()

	if g.dashCD > 0 {
		g.dashCD--
	}
	if g.invincible > 0 {
		g.invincible--
	}

	if g.lives <= 0 {
		g.phase = phaseLost
	} else if g.level.GemsLeft() == 0 {
		g.phase = phaseWon
	}
}

func directionOf(input core.InputFrame) point {
	switch {
	case input.Has(core.ActionUp):
		return point{0, -1}
	case input.Has(core.ActionDown):
		return point{0, 1}
	case input.Has(core.ActionLeft):
		return point{-1, 0}
	case input.Has(core.ActionRight):
		return point{1, 0}
	}
	return point{}
}

// movePlayer shifts the player one tile, collecting any gem there and
// taking a hit if the tile holds the enemy.
func (g *Game) movePlayer(dir point) bool {
	nx, ny := g.player.X+dir.X, g.player.Y+dir.Y
	if !g.level.Walkable(nx, ny) {
		return false
	}
	g.player = point{nx, ny}
	if g.level.CollectGem(nx, ny) {
		g.score += gemScore
	}
	g.checkEnemyContact()
	return true
}

func (g *Game) checkEnemyContact() {
	if g.player.X != g.enemy.X || g.player.Y != g.enemy.Y {
		return
	}
	if g.invincible > 0 {
		return
	}
	g.lives--
	g.invincible = g.invincibleSpan
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hearts := strings.Repeat("♥", g.lives) + strings.Repeat("♡", playerLives-g.lives)
	dst.DrawText(2, 0, fmt.Sprintf("Crakers  Score: %d  Lives: %s  Gems: %d",
		g.score, hearts, g.level.GemsLeft()))
	if g.dashCD > 0 {
		dst.DrawText(2, 1, fmt.Sprintf("Dash recharging (%d)", g.dashCD))
	} else {
		dst.DrawColoredText(2, 1, "Dash ready (Space)", core.ColorCyan)
	}

	ox := (dst.Width() - gridWidth*2) / 2
	oy := 3
	if ox < 0 {
		ox = 0
	}

	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			sx := ox + x*2
			switch {
			case g.level.walls[y][x]:
				dst.SetCell(sx, oy+y, '▓', core.ColorGray)
				dst.SetCell(sx+1, oy+y, '▓', core.ColorGray)
			case g.level.gems[point{x, y}]:
				dst.SetCell(sx, oy+y, '◆', core.ColorYellow)
			}
		}
	}

	dst.SetCell(ox+g.enemy.X*2, oy+g.enemy.Y, 'Ω', core.ColorRed)

	playerColor := core.ColorGreen
	if g.invincible > 0 && g.invincible%4 < 2 {
		playerColor = core.ColorWhite
	}
	dst.SetCell(ox+g.player.X*2, oy+g.player.Y, '@', playerColor)

	switch g.phase {
	case phaseIntro:
		dst.DrawTextCentered(oy+gridHeight/2, " Grab every gem, dodge the guard ")
		dst.DrawTextCentered(oy+gridHeight/2+1, " Press Enter to start ")
	case phaseWon:
		dst.DrawTextCentered(oy+gridHeight/2, " ALL GEMS COLLECTED! ")
		dst.DrawTextCentered(oy+gridHeight/2+1, " Press R to play again ")
	case phaseLost:
		dst.DrawTextCentered(oy+gridHeight/2, " GAME OVER ")
		dst.DrawTextCentered(oy+gridHeight/2+1, " Press R to try again ")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseWon || g.phase == phaseLost,
	}
}
