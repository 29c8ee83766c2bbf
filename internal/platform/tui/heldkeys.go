package tui

import (
	"time"

	"github.com/vovakirdan/mazechase/internal/core"
)

// DefaultKeyHold is how long a direction stays held after its last key event.
// It has to outlast the terminal's auto-repeat delay.
const DefaultKeyHold = 500 * time.Millisecond

// HeldKeys turns a terminal's press and auto-repeat events into press and
// release edges. Terminals never report releases, so a key counts as released
// once no repeat has arrived for the hold duration.
type HeldKeys struct {
	hold     time.Duration
	lastSeen map[core.Direction]time.Time
}

// NewHeldKeys creates a tracker. A non-positive hold uses DefaultKeyHold.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &HeldKeys{
		hold:     hold,
		lastSeen: make(map[core.Direction]time.Time),
	}
}

// Observe records a key event for d at now and reports whether it is a new press.
func (h *HeldKeys) Observe(d core.Direction, now time.Time) bool {
	_, held := h.lastSeen[d]
	h.lastSeen[d] = now
	return !held
}

// Expire returns the directions whose hold ran out by now, in direction order,
// and forgets them.
func (h *HeldKeys) Expire(now time.Time) []core.Direction {
	var released []core.Direction
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		seen, ok := h.lastSeen[d]
		if ok && now.Sub(seen) >= h.hold {
			delete(h.lastSeen, d)
			released = append(released, d)
		}
	}
	return released
}

// Held reports whether d is currently held.
func (h *HeldKeys) Held(d core.Direction) bool {
	_, ok := h.lastSeen[d]
	return ok
}

// Reset forgets all held keys without producing releases. Used when a new
// session starts with a zero displacement.
func (h *HeldKeys) Reset() {
	for d := range h.lastSeen {
		delete(h.lastSeen, d)
	}
}
