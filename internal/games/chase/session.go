package chase

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mazechase/internal/core"
)

// State is the session's position in the Playing -> Won/Lost machine.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome is how a finished session ended, as persisted by reporters.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// ScoreReporter receives score notifications from a session.
// Calls happen on the simulation goroutine and must not block; errors are
// logged and otherwise ignored.
type ScoreReporter interface {
	// ReportScore is called with the current score after every tick that
	// collected something, including the winning one. Tracking the best score
	// is left to the implementation.
	ReportScore(username string, score int) error
	// ReportOutcome is called once when the session leaves Playing.
	ReportOutcome(r RunResult) error
}

// RunResult summarizes a finished session.
type RunResult struct {
	SessionID string
	Username  string
	Score     int
	Total     int
	Outcome   Outcome
	Ticks     uint64
}

// SessionOptions carry the collaborators of a session.
type SessionOptions struct {
	Username string
	Reporter ScoreReporter // Optional
	Logger   *log.Logger   // Optional, nil discards
}

// TickReport describes one simulation tick.
type TickReport struct {
	Player    Move
	Collected int
	State     State
}

type pursuer struct {
	*Entity
	ctrl *WaypointController
}

// Session owns the maze, the entities, the collectible field and the score
// for one round. A restart discards the session and builds a new one.
type Session struct {
	id       uuid.UUID
	username string
	reporter ScoreReporter
	logger   *log.Logger

	maze     *Maze
	player   *Entity
	speed    int
	pursuers []pursuer
	field    *Field

	tick  uint64
	score int
	state State
}

// NewSession builds a fresh session from layout. Configuration errors are
// returned before the first tick.
func NewSession(layout Layout, opts SessionOptions) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	maze, err := NewMaze(layout.Walls, layout.Gate)
	if err != nil {
		return nil, fmt.Errorf("chase: maze: %w", err)
	}
	if layout.Speed <= 0 || layout.Player.Empty() {
		return nil, fmt.Errorf("chase: player: %w", ErrInvalidActor)
	}
	if maze.Collides(layout.Player) || maze.GateCollides(layout.Player) {
		return nil, fmt.Errorf("chase: player at %+v: %w", layout.Player, ErrSpawnBlocked)
	}

	id := uuid.New()
	s := &Session{
		id:       id,
		username: opts.Username,
		reporter: opts.Reporter,
		logger:   logger.With("session", id.String()[:8]),
		maze:     maze,
		player: NewEntity("player", RolePlayer,
			layout.Player.X, layout.Player.Y, layout.Player.W, layout.Player.H),
		speed: layout.Speed,
		state: StatePlaying,
	}

	for _, spec := range layout.Pursuers {
		if maze.Collides(spec.Spawn) {
			return nil, fmt.Errorf("chase: pursuer %s at %+v: %w", spec.Name, spec.Spawn, ErrSpawnBlocked)
		}
		ctrl, err := NewWaypointController(spec.Name, spec.Variant, spec.Script, WaypointOptions{
			HoldOnOverflow: layout.HoldOnOverflow,
			Logger:         s.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("chase: %w", err)
		}
		s.pursuers = append(s.pursuers, pursuer{
			Entity: NewEntity(spec.Name, RolePursuer,
				spec.Spawn.X, spec.Spawn.Y, spec.Spawn.W, spec.Spawn.H),
			ctrl: ctrl,
		})
	}

	s.field = GenerateField(layout.Grid, maze, layout.Player)
	if s.field.Total() == 0 {
		return nil, fmt.Errorf("chase: %w", ErrEmptyGrid)
	}

	s.logger.Debug("session started",
		"user", s.username,
		"collectibles", s.field.Total(),
		"pursuers", len(s.pursuers),
	)
	return s, nil
}

// Press adds a direction key's vector to the player's displacement.
func (s *Session) Press(d core.Direction) {
	dx, dy := d.Unit()
	s.player.Push(Vec{DX: dx, DY: dy}.Scale(s.speed))
}

// Release removes a direction key's vector from the player's displacement.
func (s *Session) Release(d core.Direction) {
	dx, dy := d.Unit()
	s.player.Push(Vec{DX: -dx, DY: -dy}.Scale(s.speed))
}

// Step advances the simulation by one tick. It does nothing once the session
// has left Playing.
//
// Order per tick: player move (gate-sensitive), pursuer moves in layout order,
// collection at the player's new box, win check, then capture check.
func (s *Session) Step() TickReport {
	if s.state != StatePlaying {
		return TickReport{State: s.state}
	}
	s.tick++

	var rep TickReport
	rep.Player = Resolve(s.player, s.maze)

	for _, p := range s.pursuers {
		p.Vel = p.ctrl.Next(p.PrevVel)
		Resolve(p.Entity, s.maze)
	}

	rep.Collected = s.field.Collect(s.player.Box())
	if rep.Collected > 0 {
		s.score += rep.Collected
		s.reportScore()
	}

	switch {
	case s.score == s.field.Total():
		// Only a collection can complete the field, so the final score
		// was reported just above.
		s.finish(StateWon)
	case s.captured():
		s.finish(StateLost)
	}

	rep.State = s.state
	return rep
}

func (s *Session) captured() bool {
	for _, p := range s.pursuers {
		if s.player.Overlaps(p.Entity) {
			return true
		}
	}
	return false
}

func (s *Session) finish(st State) {
	s.state = st
	s.logger.Info("session finished",
		"user", s.username,
		"state", st,
		"score", s.score,
		"total", s.field.Total(),
		"ticks", s.tick,
	)

	if s.reporter == nil {
		return
	}
	outcome := OutcomeLost
	if st == StateWon {
		outcome = OutcomeWon
	}
	err := s.reporter.ReportOutcome(RunResult{
		SessionID: s.id.String(),
		Username:  s.username,
		Score:     s.score,
		Total:     s.field.Total(),
		Outcome:   outcome,
		Ticks:     s.tick,
	})
	if err != nil {
		s.logger.Warn("report outcome failed", "user", s.username, "err", err)
	}
}

func (s *Session) reportScore() {
	if s.reporter == nil {
		return
	}
	if err := s.reporter.ReportScore(s.username, s.score); err != nil {
		s.logger.Warn("report score failed", "user", s.username, "score", s.score, "err", err)
	}
}

// ID returns the session identifier used in logs and run records.
func (s *Session) ID() uuid.UUID { return s.id }

// Username returns the key the session reports scores under.
func (s *Session) Username() string { return s.username }

// Score returns the number of collectibles taken so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of collectibles generated for the session.
func (s *Session) Total() int { return s.field.Total() }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Ticks returns the number of simulated ticks.
func (s *Session) Ticks() uint64 { return s.tick }

// Maze returns the session's maze.
func (s *Session) Maze() *Maze { return s.maze }

// Player returns a copy of the player entity.
func (s *Session) Player() Entity { return *s.player }

// Pursuers returns copies of the pursuer entities in layout order.
func (s *Session) Pursuers() []Entity {
	out := make([]Entity, len(s.pursuers))
	for i, p := range s.pursuers {
		out[i] = *p.Entity
	}
	return out
}

// Cursors returns the waypoint cursors in layout order.
func (s *Session) Cursors() []Cursor {
	out := make([]Cursor, len(s.pursuers))
	for i, p := range s.pursuers {
		out[i] = p.ctrl.Cursor()
	}
	return out
}

// Collectibles returns a copy of the field's items.
func (s *Session) Collectibles() []Collectible { return s.field.Items() }

