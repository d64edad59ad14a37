package blockstack

import (
	"time"

	"github.com/nostalgik/nostalgikit/internal/core"
)

// Snapshot is a deep copy of everything the engine exposes: the locked
// board, the active piece cells, the next-piece preview, and the session
// counters. Renderers and determinism tests read snapshots instead of
// poking at engine internals.
type Snapshot struct {
	Rows, Cols int
	Board      [][]core.Color

	Active      [4]Offset
	ActiveColor core.Color
	HasActive   bool

	Next      Shape
	NextColor core.Color

	Score     int
	Lines     int
	Level     int
	DropDelay time.Duration
	Phase     Phase
}

// Snapshot captures the full observable engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Rows:      e.board.rows,
		Cols:      e.board.cols,
		Board:     e.board.Matrix(),
		Next:      e.next,
		NextColor: e.next.Color(),
		Score:     e.score,
		Lines:     e.lines,
		Level:     e.level,
		DropDelay: e.dropDelay,
		Phase:     e.phase,
	}
	if e.active != nil {
		s.Active = e.active.Cells()
		s.ActiveColor = e.active.Color()
		s.HasActive = true
	}
	return s
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the cumulative number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Next returns the shape that will spawn after the active piece locks.
func (e *Engine) Next() Shape { return e.next }

// Active returns a copy of the falling piece; ok is false when no piece is
// in play (title screen or game over).
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return *e.active, true
}

// Board returns the engine's board for read access in tests.
func (e *Engine) Board() *Board { return e.board }
