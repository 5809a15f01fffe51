package core

// Color is a foreground color for a screen glyph. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
)
