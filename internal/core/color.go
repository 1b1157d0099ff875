package core

// Color is the foreground color of a screen cell. Hosts map it to terminal
// styles; the zero value uses the terminal default.
type Color uint8

// Piece colors.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
)

// Interface colors.
const (
	ColorWhite Color = iota + ColorRed + 1
	ColorGray
	ColorBrightWhite
	ColorBrightCyan
	ColorBrightYellow
	ColorBrightRed

	// NumColors is the size of the palette.
	NumColors = int(ColorBrightRed) + 1
)

// Valid reports whether c is in the palette.
func (c Color) Valid() bool {
	return int(c) < NumColors
}
