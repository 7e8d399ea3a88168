package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
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
	ColorGold
	ColorPink
)

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrUnderline
	AttrFaint
)

// Has reports whether every attribute in o is set.
func (a Attr) Has(o Attr) bool {
	return a&o == o
}
