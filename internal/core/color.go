package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color; the engine only picks them.
type Color uint8

// Palette used by the invasion renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
