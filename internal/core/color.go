package core

// Color is a palette index for screen cells and scene sprites.
// The terminal platform maps it to ANSI 256 colors, the window platform
// to RGB named colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightCyan
)
