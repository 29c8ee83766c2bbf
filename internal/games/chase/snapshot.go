package chase

// Point is an entity position in world pixels.
type Point struct {
	X, Y int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Round     int
	Score     int
	Total     int
	Remaining int
	State     State
	Paused    bool
	Player    Point
	PlayerVel Vec
	Pursuers  []Point
	Cursors   []Cursor
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:      s.Ticks(),
		Round:     g.rounds,
		Score:     s.Score(),
		Total:     s.Total(),
		Remaining: s.field.Remaining(),
		State:     s.State(),
		Paused:    g.paused,
		Player:    Point{X: s.player.X, Y: s.player.Y},
		PlayerVel: s.player.Vel,
		Cursors:   s.Cursors(),
	}
	for _, p := range s.pursuers {
		snap.Pursuers = append(snap.Pursuers, Point{X: p.X, Y: p.Y})
	}
	return snap
}
