package blockstack

import (
	"math/rand"
	"time"
)

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseFalling
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseFalling:
		return "falling"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns the board, the active and next pieces, and the session state
// (score, lines, level, drop delay). It is a plain value: construct as many
// as needed, none of them self-schedule. An external timer calls Tick at the
// cadence reported by DropDelay; player input calls the command methods.
// Every command executes to completion before the next is accepted; the
// engine is strictly single-threaded by contract.
type Engine struct {
	board  *Board
	active *Piece
	next   Shape

	score     int
	lines     int
	level     int
	dropDelay time.Duration

	phase  Phase
	rng    *rand.Rand
	tuning Tuning
}

// NewEngine creates an engine with the classic tuning. The seed drives the
// piece sequence; equal seeds give equal games.
func NewEngine(rows, cols int, seed int64) *Engine {
	return NewEngineWithTuning(rows, cols, seed, DefaultTuning())
}

// NewEngineWithTuning creates an engine with a custom speed/score tuning.
func NewEngineWithTuning(rows, cols int, seed int64, tuning Tuning) *Engine {
	e := &Engine{
		board:  NewBoard(rows, cols),
		rng:    rand.New(rand.NewSource(seed)),
		tuning: tuning,
		level:  1,
		phase:  PhaseTitle,
	}
	e.dropDelay = tuning.DelayForLevel(e.level)
	return e
}

// Phase returns the engine's current lifecycle state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// DropDelay returns the interval the external scheduler should use between
// Tick calls. It changes when the level changes, so the scheduler must
// re-read it after every lock.
func (e *Engine) DropDelay() time.Duration {
	return e.dropDelay
}

// NewGame resets the board and session state, generates a next piece, and
// spawns it. Always succeeds and leaves the engine in the Falling phase
// (the very first spawn on an empty board cannot be blocked).
func (e *Engine) NewGame() {
	e.board = NewBoard(e.board.rows, e.board.cols)
	e.score = 0
	e.lines = 0
	e.level = 1
	e.dropDelay = e.tuning.DelayForLevel(e.level)
	e.phase = PhaseFalling
	e.next = e.randomShape()
	e.spawn()
}

// MoveLeft shifts the active piece one column left. Returns false when the
// move was rejected or the engine is not in the Falling phase.
func (e *Engine) MoveLeft() bool {
	return e.move(-1, 0)
}

// MoveRight shifts the active piece one column right.
func (e *Engine) MoveRight() bool {
	return e.move(1, 0)
}

// move applies a translation if the result fits. Never partially applies.
func (e *Engine) move(dx, dy int) bool {
	if e.phase != PhaseFalling || e.active == nil {
		return false
	}
	moved := e.active.Translated(dx, dy)
	if !e.board.Fits(moved) {
		return false
	}
	*e.active = moved
	return true
}

// Rotate advances the active piece to its next rotation state using a
// three-step kick search: same origin first, then one cell left, then one
// cell right. The first fit is committed; if none fit the rotation is a
// no-op and Rotate returns false. Kicks are single-cell and horizontal
// only, so a vertical I pressed against a wall can stay unrotatable; that
// matches the original game.
func (e *Engine) Rotate() bool {
	if e.phase != PhaseFalling || e.active == nil {
		return false
	}
	rotated := e.active.Rotated(e.active.Rotation + 1)
	for _, kick := range [3]int{0, -1, 1} {
		candidate := rotated.Translated(kick, 0)
		if e.board.Fits(candidate) {
			*e.active = candidate
			return true
		}
	}
	return false
}

// SoftDrop forces the active piece down one cell; when it cannot descend,
// the piece locks and the next one spawns.
func (e *Engine) SoftDrop() {
	if e.phase != PhaseFalling || e.active == nil {
		return
	}
	if !e.move(0, 1) {
		e.lockAndAdvance()
	}
}

// Tick is the periodic forced descent, identical in effect to SoftDrop.
// A no-op while paused; the external timer keeps running regardless.
func (e *Engine) Tick() {
	if e.phase != PhaseFalling {
		return
	}
	e.SoftDrop()
}

// HardDrop drops the active piece to its lowest legal position, scoring one
// point per cell fallen, then locks it immediately.
func (e *Engine) HardDrop() {
	if e.phase != PhaseFalling || e.active == nil {
		return
	}
	for e.move(0, 1) {
		e.score++
	}
	e.lockAndAdvance()
}

// TogglePause flips the paused flag. Valid only while Falling or Paused;
// ignored once the game is over or before it starts.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseFalling:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhaseFalling
	}
}

// lockAndAdvance transfers the active piece onto the board, sweeps full
// rows, applies scoring and the level/speed curve, and spawns the next
// piece (which may end the game).
func (e *Engine) lockAndAdvance() {
	if e.active == nil {
		return
	}
	if err := e.board.Lock(e.active.Cells(), e.active.Color()); err != nil {
		// Invariant breach: spawn legality is checked before any lock, so a
		// cell above the field here means an engine bug. Abort the game
		// cleanly rather than corrupt the board.
		e.active = nil
		e.phase = PhaseGameOver
		return
	}
	e.active = nil

	cleared := e.board.SweepFullRows()
	if cleared > 0 {
		e.score += e.tuning.ClearBonus(cleared, e.level)
		e.lines += cleared
		e.level = LevelForLines(e.lines)
		e.dropDelay = e.tuning.DelayForLevel(e.level)
	}

	e.spawn()
}

// spawn promotes the next piece to active at the canonical top-center
// origin and draws a new next piece. A blocked spawn is the sole game-over
// trigger: the piece is not installed and the phase becomes GameOver.
func (e *Engine) spawn() {
	piece := Piece{
		Shape:    e.next,
		Rotation: 0,
		X:        e.board.cols/2 - 2,
		Y:        0,
	}
	e.next = e.randomShape()

	if !e.board.Fits(piece) {
		e.phase = PhaseGameOver
		return
	}
	e.active = &piece
	e.phase = PhaseFalling
}

func (e *Engine) randomShape() Shape {
	return Shape(e.rng.Intn(shapeCount))
}
