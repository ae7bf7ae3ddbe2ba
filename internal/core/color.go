package core

// Color is the foreground color of a screen cell or board block.
// The zero value means "no color": an empty board cell or default text.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorGray
)
