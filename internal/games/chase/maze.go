package chase

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mazechase/internal/core"
)

var (
	// ErrEmptyMaze is returned when a maze is built without walls.
	ErrEmptyMaze = errors.New("maze has no walls")
	// ErrInvalidWall is returned for a wall or gate without area.
	ErrInvalidWall = errors.New("wall has no area")
)

// Maze is the static set of wall segments plus an optional one-way gate.
// It is immutable after construction.
type Maze struct {
	walls   []core.Rect
	gate    core.Rect
	hasGate bool
	bounds  core.Rect
}

// NewMaze builds a maze from wall rectangles and an optional gate.
func NewMaze(walls []core.Rect, gate *core.Rect) (*Maze, error) {
	if len(walls) == 0 {
		return nil, ErrEmptyMaze
	}

	m := &Maze{walls: make([]core.Rect, len(walls))}
	for i, w := range walls {
		if w.Empty() {
			return nil, fmt.Errorf("wall %d %+v: %w", i, w, ErrInvalidWall)
		}
		m.walls[i] = w
		m.bounds = m.bounds.Union(w)
	}

	if gate != nil {
		if gate.Empty() {
			return nil, fmt.Errorf("gate %+v: %w", *gate, ErrInvalidWall)
		}
		m.gate = *gate
		m.hasGate = true
		m.bounds = m.bounds.Union(*gate)
	}

	return m, nil
}

// Collides reports whether box overlaps any wall segment.
func (m *Maze) Collides(box core.Rect) bool {
	for _, w := range m.walls {
		if box.Intersects(w) {
			return true
		}
	}
	return false
}

// GateCollides reports whether box overlaps the gate.
// Always false for a maze without a gate.
func (m *Maze) GateCollides(box core.Rect) bool {
	return m.hasGate && box.Intersects(m.gate)
}

// Walls returns a copy of the wall segments in build order.
func (m *Maze) Walls() []core.Rect {
	out := make([]core.Rect, len(m.walls))
	copy(out, m.walls)
	return out
}

// Gate returns the gate and whether the maze has one.
func (m *Maze) Gate() (core.Rect, bool) {
	return m.gate, m.hasGate
}

// Bounds returns the smallest rectangle enclosing all walls and the gate.
func (m *Maze) Bounds() core.Rect {
	return m.bounds
}
