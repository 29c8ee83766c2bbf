package core

// Color identifies how a screen cell is painted. Board elements carry their
// own role so the frontend can style walls and the gate apart from text.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorGate
	ColorCollectible
	ColorPlayer
	ColorRed
	ColorPink
	ColorCyan
	ColorOrange
	ColorMagenta
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
