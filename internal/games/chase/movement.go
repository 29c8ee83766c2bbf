package chase

// Move describes how a displacement was resolved on one tick.
type Move struct {
	BlockedX bool // X displacement hit a wall and was reverted
	BlockedY bool // Y displacement hit a wall and was reverted
	SkippedY bool // Y was not attempted because X was blocked
	Gated    bool // Gate hit; the whole move was reverted
}

// Resolve applies the entity's pending displacement against the maze and
// leaves the entity at its new resting position.
//
// The order is fixed: X alone first; Y only if X did not collide; then, for
// gate-sensitive entities, a full revert if the result touches the gate.
// An entity blocked on X does not slide along Y on the same tick.
func Resolve(e *Entity, m *Maze) Move {
	var mv Move
	oldX, oldY := e.X, e.Y

	e.X = oldX + e.Vel.DX
	if m.Collides(e.Box()) {
		e.X = oldX
		mv.BlockedX = true
		mv.SkippedY = e.Vel.DY != 0
	} else {
		e.Y = oldY + e.Vel.DY
		if m.Collides(e.Box()) {
			e.Y = oldY
			mv.BlockedY = true
		}
	}

	if e.GateSensitive() && m.GateCollides(e.Box()) {
		e.X, e.Y = oldX, oldY
		mv.Gated = true
	}

	e.PrevVel = e.Vel
	return mv
}
