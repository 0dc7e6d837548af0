package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game. ColorDefault leaves the terminal's own color.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorGreen
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)
