package chase

import "github.com/vovakirdan/mazechase/internal/core"

const hudHeight = 1

// Glyphs used on the board.
const (
	WallChar        = '█'
	GateChar        = '─'
	CollectibleChar = '·'
	PlayerChar      = 'C'
	PursuerChar     = 'M'
)

var pursuerColors = map[string]core.Color{
	"blinky": core.ColorRed,
	"pinky":  core.ColorPink,
	"inky":   core.ColorCyan,
	"clyde":  core.ColorOrange,
}

// BoardSize returns the board's size in terminal cells.
func BoardSize(l Layout, m *Maze) (w, h int) {
	b := m.Bounds()
	return ceilDiv(b.Right(), l.CellW), ceilDiv(b.Bottom(), l.CellH)
}

// DrawBoard draws the maze, the remaining collectibles and the entities of s
// with the board's top-left corner at (ox, oy).
func DrawBoard(dst *core.Screen, s *Session, l Layout, ox, oy int) {
	toCell := func(x, y int) (int, int) {
		return ox + x/l.CellW, oy + y/l.CellH
	}
	fill := func(r core.Rect, ch rune, c core.Color) {
		x0, y0 := toCell(r.X, r.Y)
		x1, y1 := toCell(r.Right()-1, r.Bottom()-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
	center := func(r core.Rect, ch rune, c core.Color) {
		cx, cy := r.Center()
		x, y := toCell(cx, cy)
		dst.SetColored(x, y, ch, c)
	}

	for _, w := range s.Maze().Walls() {
		fill(w, WallChar, core.ColorWall)
	}
	for _, it := range s.Collectibles() {
		if !it.Collected {
			center(it.Box, CollectibleChar, core.ColorCollectible)
		}
	}
	if gate, ok := s.Maze().Gate(); ok {
		fill(gate, GateChar, core.ColorGate)
	}
	for _, p := range s.Pursuers() {
		c, ok := pursuerColors[p.Name]
		if !ok {
			c = core.ColorMagenta
		}
		center(p.Box(), PursuerChar, c)
	}
	center(s.player.Box(), PlayerChar, core.ColorPlayer)
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a boxed message in the middle of the screen.
func drawPanel(dst *core.Screen, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.text)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	box := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		tx := x + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColored(tx, y+1+i, l.text, l.color)
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
