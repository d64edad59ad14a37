package core

// Color is a foreground color tag for a screen cell. The platform layer maps
// tags to terminal colors; game logic only ever deals in tags.
type Color uint8

// Predefined colors. ColorDefault doubles as "no color" for empty cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
