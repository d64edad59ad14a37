package blockstack

import "github.com/nostalgik/nostalgikit/internal/core"

// Shape identifies one of the seven tetromino kinds.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ

	shapeCount = 7
)

// String returns the canonical one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the display color associated with the shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeO:
		return core.ColorYellow
	case ShapeT:
		return core.ColorMagenta
	case ShapeL:
		return core.ColorOrange
	case ShapeJ:
		return core.ColorBlue
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// Offset is a cell position relative to a piece's origin (or absolute, when
// produced by Piece.Cells).
type Offset struct {
	X, Y int
}

// rotationStates is the immutable piece catalog: for each shape, the ordered
// list of rotation states, each exactly four cell offsets from the shape
// origin. Every state fits the shape's bounding box so collision checks can
// treat all shapes uniformly.
var rotationStates = [shapeCount][][4]Offset{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeL: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeJ: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
}

// RotationStates returns the ordered rotation states for a shape. The
// returned slice is shared catalog data and must not be modified.
func RotationStates(s Shape) [][4]Offset {
	return rotationStates[s]
}

// Shapes returns all shapes in catalog order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeL, ShapeJ, ShapeS, ShapeZ}
}

// Piece is the currently falling piece: a shape reference, a rotation index
// into the shape's rotation-state list, and an origin in board coordinates.
type Piece struct {
	Shape    Shape
	Rotation int
	X, Y     int
}

// rotationState resolves the piece's current rotation state, wrapping the
// rotation index modulo the shape's state count.
func (p Piece) rotationState() [4]Offset {
	states := rotationStates[p.Shape]
	rot := p.Rotation % len(states)
	if rot < 0 {
		rot += len(states)
	}
	return states[rot]
}

// Cells returns the four absolute board cells the piece occupies.
func (p Piece) Cells() [4]Offset {
	var cells [4]Offset
	for i, off := range p.rotationState() {
		cells[i] = Offset{X: p.X + off.X, Y: p.Y + off.Y}
	}
	return cells
}

// Translated returns a copy of the piece shifted by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece advanced to the given rotation index.
func (p Piece) Rotated(rotation int) Piece {
	p.Rotation = rotation % len(rotationStates[p.Shape])
	return p
}

// Color returns the piece's display color.
func (p Piece) Color() core.Color {
	return p.Shape.Color()
}
