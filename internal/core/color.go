package core

// Color represents a foreground color for a screen cell.
// Values index a fixed palette mapped to ANSI colors by the renderer.
type Color uint8

// Predefined colors. The bright variants cover the classic minesweeper
// digit palette (1 blue, 2 green, 3 red, ...).
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
	ColorGray
)
