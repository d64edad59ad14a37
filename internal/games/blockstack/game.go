package blockstack

import (
	"fmt"
	"time"

	"github.com/nostalgik/nostalgikit/internal/config"
	"github.com/nostalgik/nostalgikit/internal/core"
	"github.com/nostalgik/nostalgikit/internal/registry"
)

// cellWidth is the number of screen columns per board cell. Terminal cells
// are roughly twice as tall as wide, so doubling the width keeps the
// playfield square-ish.
const cellWidth = 2

// Game adapts the falling-block engine to the platform's fixed-tick Game
// interface. The engine itself never schedules anything: Game accumulates
// wall-clock time from the platform tick and forwards a gravity Tick to the
// engine whenever the accumulated time crosses the engine's current drop
// delay.
type Game struct {
	engine *Engine
	cfg    core.RuntimeConfig

	gravity  time.Duration
	screenW  int
	screenH  int
	tooSmall bool
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

// New creates a new Block Stack game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blockstack", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockstack"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Stack"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gravity = 0

	bsCfg, err := config.LoadBlockstack(configPath)
	if err != nil {
		bsCfg = config.DefaultBlockstackConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockstackPreset(&bsCfg, config.DifficultyPreset(difficultyPreset))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rows, cols := bsCfg.Board.Rows, bsCfg.Board.Cols
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}

	g.engine = NewEngineWithTuning(rows, cols, seed, tuningFromConfig(bsCfg))
	g.engine.NewGame()

	requiredW := cols*cellWidth + 14
	requiredH := rows + 4
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// tuningFromConfig converts the YAML config into an engine Tuning, falling
// back to classic defaults for missing or nonsensical values.
func tuningFromConfig(cfg config.BlockstackConfig) Tuning {
	t := DefaultTuning()
	if cfg.Speed.BaseDelayMs > 0 {
		t.BaseDelay = time.Duration(cfg.Speed.BaseDelayMs) * time.Millisecond
	}
	if cfg.Speed.DelayStepMs >= 0 {
		t.DelayStep = time.Duration(cfg.Speed.DelayStepMs) * time.Millisecond
	}
	if cfg.Speed.MinDelayMs > 0 {
		t.MinDelay = time.Duration(cfg.Speed.MinDelayMs) * time.Millisecond
	}
	for i, bonus := range cfg.Scoring.LineBonus {
		if i >= len(t.LineBonus) {
			break
		}
		t.LineBonus[i] = bonus
	}
	return t
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.engine.Phase() == PhaseGameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.cfg.TickRate,
			Seed:     0,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.engine.TogglePause()
	}

	if g.engine.Phase() != PhaseFalling {
		return core.StepResult{State: g.State()}
	}

	switch {
	case input.Has(core.ActionLeft):
		g.engine.MoveLeft()
	case input.Has(core.ActionRight):
		g.engine.MoveRight()
	}
	if input.Has(core.ActionUp) || input.Has(core.ActionPrimary) {
		g.engine.Rotate()
	}
	if input.Has(core.ActionDrop) {
		g.engine.HardDrop()
		g.gravity = 0
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionDown) {
		g.engine.SoftDrop()
		g.gravity = 0
	}

	// Gravity: forced descent once the accumulated platform time crosses
	// the engine's drop delay. The delay is re-read every pass because a
	// line clear inside Tick can change it.
	g.gravity += g.cfg.TickInterval()
	for g.engine.Phase() == PhaseFalling && g.gravity >= g.engine.DropDelay() {
		g.gravity -= g.engine.DropDelay()
		g.engine.Tick()
	}

	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	snap := g.engine.Snapshot()

	fieldW := snap.Cols * cellWidth
	fieldX := (dst.Width() - fieldW - 12) / 2
	if fieldX < 1 {
		fieldX = 1
	}
	fieldY := 2

	dst.DrawText(fieldX, 0, fmt.Sprintf("Block Stack  Score: %d  Lines: %d  Level: %d",
		snap.Score, snap.Lines, snap.Level))

	dst.DrawBox(core.NewRect(fieldX-1, fieldY-1, fieldW+2, snap.Rows+2))

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			if c := snap.Board[y][x]; c != core.ColorDefault {
				g.drawCell(dst, fieldX, fieldY, x, y, c)
			}
		}
	}
	if snap.HasActive {
		for _, c := range snap.Active {
			if c.Y >= 0 {
				g.drawCell(dst, fieldX, fieldY, c.X, c.Y, snap.ActiveColor)
			}
		}
	}

	g.renderPreview(dst, fieldX+fieldW+3, fieldY, snap)

	switch snap.Phase {
	case PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, " Paused - press P to continue ")
	case PhaseGameOver:
		dst.DrawTextCentered(dst.Height()/2-1, " Game Over ")
		dst.DrawTextCentered(dst.Height()/2+1, " Press R to restart ")
	}
}

// drawCell fills one board cell (cellWidth screen columns) with a colored
// block.
func (g *Game) drawCell(dst *core.Screen, fieldX, fieldY, x, y int, c core.Color) {
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(fieldX+x*cellWidth+i, fieldY+y, '█', c)
	}
}

// renderPreview draws the next-piece box to the right of the playfield.
func (g *Game) renderPreview(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawText(x, y, "NEXT")
	dst.DrawBox(core.NewRect(x-1, y+1, 4*cellWidth+2, 6))

	preview := Piece{Shape: snap.Next}
	for _, c := range preview.Cells() {
		for i := 0; i < cellWidth; i++ {
			dst.SetCell(x+c.X*cellWidth+i, y+2+c.Y, '█', snap.NextColor)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Phase() == PhaseGameOver,
		Paused:   g.engine.Phase() == PhasePaused,
	}
}
