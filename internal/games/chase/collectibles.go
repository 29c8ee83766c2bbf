package chase

import "github.com/vovakirdan/mazechase/internal/core"

// Collectible is a single point item.
type Collectible struct {
	Box       core.Rect
	Collected bool
}

// CellSpan is an inclusive block of grid cells.
type CellSpan struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// Contains reports whether (row, col) lies in the span.
func (s CellSpan) Contains(row, col int) bool {
	return row >= s.RowMin && row <= s.RowMax && col >= s.ColMin && col <= s.ColMax
}

// GridSpec describes the candidate positions for collectibles.
type GridSpec struct {
	Rows, Cols       int
	Pitch            int // Distance between candidate cells
	OffsetX, OffsetY int // Top-left of cell (0, 0)
	Size             int // Collectible box edge
	Reserved         CellSpan
}

// Field tracks every collectible of a session.
type Field struct {
	items     []Collectible
	remaining int
}

// GenerateField walks the candidate grid row by row and keeps every cell that
// is outside the reserved block and overlaps neither a wall nor the player's
// starting box.
func GenerateField(grid GridSpec, m *Maze, player core.Rect) *Field {
	f := &Field{}
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if grid.Reserved.Contains(row, col) {
				continue
			}

			box := core.NewRect(grid.Pitch*col+grid.OffsetX, grid.Pitch*row+grid.OffsetY, grid.Size, grid.Size)
			if m.Collides(box) || box.Intersects(player) {
				continue
			}

			f.items = append(f.items, Collectible{Box: box})
		}
	}
	f.remaining = len(f.items)
	return f
}

// Collect marks every uncollected item overlapping box as collected and
// returns how many were taken.
func (f *Field) Collect(box core.Rect) int {
	if f.remaining == 0 {
		return 0
	}

	n := 0
	for i := range f.items {
		it := &f.items[i]
		if it.Collected || !it.Box.Intersects(box) {
			continue
		}
		it.Collected = true
		n++
	}
	f.remaining -= n
	return n
}

// Total returns the number of collectibles generated.
func (f *Field) Total() int {
	return len(f.items)
}

// Remaining returns how many collectibles are still on the board.
func (f *Field) Remaining() int {
	return f.remaining
}

// Items returns a copy of the collectibles in generation order.
func (f *Field) Items() []Collectible {
	out := make([]Collectible, len(f.items))
	copy(out, f.items)
	return out
}
