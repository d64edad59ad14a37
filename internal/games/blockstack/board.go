package blockstack

import (
	"errors"

	"github.com/nostalgik/nostalgikit/internal/core"
)

// ErrLockAboveField reports an attempt to lock a cell above the visible
// field (y < 0). The engine always verifies spawn legality before locking,
// so hitting this error means an engine invariant was broken, not a player
// mistake.
var ErrLockAboveField = errors.New("blockstack: cannot lock cell above the visible field")

// Board is the persistent grid of locked cells. It is the sole owner of the
// cell buffer: rows are only ever added or removed by SweepFullRows, which
// rebuilds the buffer instead of mutating through aliased slices.
type Board struct {
	rows  int
	cols  int
	cells [][]core.Color // cells[y][x]; ColorDefault marks an empty cell
}

// NewBoard creates an empty board. Dimensions are fixed for the board's
// lifetime.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = emptyGrid(rows, cols)
	return b
}

func emptyGrid(rows, cols int) [][]core.Color {
	g := make([][]core.Color, rows)
	for y := range g {
		g[y] = make([]core.Color, cols)
	}
	return g
}

// Rows returns the number of visible rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// WithinBounds reports whether (x, y) is a legal piece cell position:
// inside the horizontal extent and above the floor. Negative y is legal;
// it represents cells still entering the field from above.
func (b *Board) WithinBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y < b.rows
}

// Occupied reports whether the cell at (x, y) holds a locked block.
// Positions above the visible field (y < 0) never collide.
func (b *Board) Occupied(x, y int) bool {
	if y < 0 || y >= b.rows || x < 0 || x >= b.cols {
		return false
	}
	return b.cells[y][x] != core.ColorDefault
}

// ColorAt returns the color of the locked cell at (x, y), or ColorDefault
// when the cell is empty or out of range.
func (b *Board) ColorAt(x, y int) core.Color {
	if y < 0 || y >= b.rows || x < 0 || x >= b.cols {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Fits reports whether the piece can legally occupy its current position:
// every cell inside the horizontal bounds, above the floor, and (for cells
// on the visible field) not already occupied.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if !b.WithinBounds(c.X, c.Y) {
			return false
		}
		if b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock marks the given cells occupied with the given color. The caller must
// have validated legality first; a cell above the visible field returns
// ErrLockAboveField without touching the board.
func (b *Board) Lock(cells [4]Offset, color core.Color) error {
	for _, c := range cells {
		if c.Y < 0 {
			return ErrLockAboveField
		}
	}
	for _, c := range cells {
		b.cells[c.Y][c.X] = color
	}
	return nil
}

// SweepFullRows removes every fully occupied row, inserts that many empty
// rows at the top, and returns the number of rows cleared. The relative
// order of all surviving rows is preserved.
func (b *Board) SweepFullRows() int {
	kept := make([][]core.Color, 0, b.rows)
	for _, row := range b.cells {
		full := true
		for _, cell := range row {
			if cell == core.ColorDefault {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := emptyGrid(cleared, b.cols)
	b.cells = append(fresh, kept...)
	return cleared
}

// Matrix returns a deep copy of the locked-cell grid for snapshots.
func (b *Board) Matrix() [][]core.Color {
	m := make([][]core.Color, b.rows)
	for y, row := range b.cells {
		m[y] = make([]core.Color, b.cols)
		copy(m[y], row)
	}
	return m
}
