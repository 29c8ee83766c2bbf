package chase

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyScript is returned for a pursuer without waypoints.
	ErrEmptyScript = errors.New("waypoint script is empty")
	// ErrInvalidWaypoint is returned for a waypoint lasting less than one tick.
	ErrInvalidWaypoint = errors.New("waypoint duration must be at least one tick")
	// ErrWrapOutOfRange is returned when a variant's wrap target is past the script end.
	ErrWrapOutOfRange = errors.New("wrap target outside script")
)

// Waypoint is one scripted step: move by (DX, DY) every tick for Ticks ticks.
type Waypoint struct {
	DX, DY int
	Ticks  int
}

// Cursor is the replay position inside a script.
type Cursor struct {
	Index   int // Current waypoint
	Elapsed int // Ticks already spent at Index
}

// WrapTarget returns the index a variant's cursor returns to after the last
// waypoint. The "clyde" variant skips its two opening steps on every lap.
func WrapTarget(variant string) int {
	if variant == "clyde" {
		return 2
	}
	return 0
}

// WaypointOptions tune a controller.
type WaypointOptions struct {
	// HoldOnOverflow keeps the previous displacement on the tick an
	// out-of-range cursor is detected instead of applying waypoint 0.
	HoldOnOverflow bool
	Logger         *log.Logger
}

// WaypointController replays a fixed script for one pursuer.
type WaypointController struct {
	name           string
	script         []Waypoint
	wrapTo         int
	cursor         Cursor
	holdOnOverflow bool
	logger         *log.Logger
}

// NewWaypointController validates the script and returns a controller
// positioned at {0, 0}. The script is copied.
func NewWaypointController(name, variant string, script []Waypoint, opts WaypointOptions) (*WaypointController, error) {
	if len(script) == 0 {
		return nil, fmt.Errorf("pursuer %s: %w", name, ErrEmptyScript)
	}
	for i, wp := range script {
		if wp.Ticks < 1 {
			return nil, fmt.Errorf("pursuer %s step %d: %w", name, i, ErrInvalidWaypoint)
		}
	}

	wrapTo := WrapTarget(variant)
	if wrapTo >= len(script) {
		return nil, fmt.Errorf("pursuer %s wraps to %d of %d: %w", name, wrapTo, len(script), ErrWrapOutOfRange)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &WaypointController{
		name:           name,
		script:         make([]Waypoint, len(script)),
		wrapTo:         wrapTo,
		holdOnOverflow: opts.HoldOnOverflow,
		logger:         logger,
	}
	copy(c.script, script)
	return c, nil
}

// Next advances the cursor by one tick and returns the displacement for it.
// prev is the pursuer's displacement on the previous tick.
func (c *WaypointController) Next(prev Vec) Vec {
	if c.cursor.Index < 0 || c.cursor.Index >= len(c.script) {
		c.logger.Warn("waypoint cursor out of range, resetting",
			"pursuer", c.name,
			"index", c.cursor.Index,
			"len", len(c.script),
		)
		c.cursor = Cursor{}
		if c.holdOnOverflow {
			return prev
		}
	}

	wp := c.script[c.cursor.Index]
	c.cursor.Elapsed++
	if c.cursor.Elapsed >= wp.Ticks {
		c.cursor.Index++
		if c.cursor.Index >= len(c.script) {
			c.cursor.Index = c.wrapTo
		}
		c.cursor.Elapsed = 0
	}

	return Vec{DX: wp.DX, DY: wp.DY}
}

// Cursor returns the current replay position.
func (c *WaypointController) Cursor() Cursor {
	return c.cursor
}

// WrapIndex returns the index the cursor returns to after the last waypoint.
func (c *WaypointController) WrapIndex() int {
	return c.wrapTo
}

// TotalTicks returns the sum of all waypoint durations.
func (c *WaypointController) TotalTicks() int {
	total := 0
	for _, wp := range c.script {
		total += wp.Ticks
	}
	return total
}

// LapTicks returns the duration of one lap after the first wrap.
func (c *WaypointController) LapTicks() int {
	total := 0
	for _, wp := range c.script[c.wrapTo:] {
		total += wp.Ticks
	}
	return total
}
