package chase

import "github.com/vovakirdan/mazechase/internal/core"

// Role tags where an entity's displacement comes from.
type Role int

const (
	// RolePlayer entities are driven by direction keys and blocked by the gate.
	RolePlayer Role = iota
	// RolePursuer entities are driven by a waypoint script and pass through the gate.
	RolePursuer
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RolePursuer:
		return "pursuer"
	default:
		return "unknown"
	}
}

// Vec is a per-tick displacement in world pixels.
type Vec struct {
	DX, DY int
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{DX: v.DX + o.DX, DY: v.DY + o.DY}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k int) Vec {
	return Vec{DX: v.DX * k, DY: v.DY * k}
}

// Zero reports whether the vector is (0, 0).
func (v Vec) Zero() bool {
	return v.DX == 0 && v.DY == 0
}

// Entity is a movable object with a fixed-size bounding box.
// It holds no wall data; collisions are resolved against a Maze.
type Entity struct {
	Name string
	Role Role
	X, Y int // Top-left corner
	W, H int // Sprite size

	Vel     Vec // Pending displacement for the next tick
	PrevVel Vec // Displacement attempted on the previous tick
}

// NewEntity creates an entity at (x, y) with the given sprite size.
func NewEntity(name string, role Role, x, y, w, h int) *Entity {
	return &Entity{Name: name, Role: role, X: x, Y: y, W: w, H: h}
}

// Box returns the entity's current bounding box.
func (e *Entity) Box() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// GateSensitive reports whether the gate blocks this entity.
func (e *Entity) GateSensitive() bool {
	return e.Role == RolePlayer
}

// Push adds v to the pending displacement. Player input is additive:
// pressing a key pushes its vector and releasing pushes the opposite.
func (e *Entity) Push(v Vec) {
	e.Vel = e.Vel.Add(v)
}

// Overlaps reports whether the two entities' boxes intersect.
func (e *Entity) Overlaps(other *Entity) bool {
	return e.Box().Intersects(other.Box())
}
