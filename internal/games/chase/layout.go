package chase

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
)

var (
	// ErrInvalidRect is returned for a rectangle that is not [x, y, w, h].
	ErrInvalidRect = errors.New("rectangle must be [x, y, width, height]")
	// ErrInvalidStep is returned for a waypoint that is not [dx, dy, ticks].
	ErrInvalidStep = errors.New("waypoint must be [dx, dy, ticks]")
	// ErrSpawnBlocked is returned when an entity starts inside a wall.
	ErrSpawnBlocked = errors.New("spawn overlaps a wall")
	// ErrEmptyGrid is returned when the collectible grid yields nothing to collect.
	ErrEmptyGrid = errors.New("collectible grid is empty")
	// ErrInvalidActor is returned for a non-positive sprite size or speed.
	ErrInvalidActor = errors.New("actor needs positive size and speed")
	// ErrInvalidTiming is returned for a non-positive tick rate.
	ErrInvalidTiming = errors.New("tick rates must be positive")
)

// PursuerSpec is the static description of one pursuer.
type PursuerSpec struct {
	Name    string
	Variant string
	Spawn   core.Rect
	Script  []Waypoint
}

// Layout is the immutable description every Session is built from.
// Restart rebuilds all session state from the same Layout value.
type Layout struct {
	Walls    []core.Rect
	Gate     *core.Rect
	Player   core.Rect
	Speed    int
	Pursuers []PursuerSpec
	Grid     GridSpec

	TickRate    int
	EndTickRate int
	CellW       int // World pixels per terminal column
	CellH       int // World pixels per terminal row

	HoldOnOverflow bool
}

// ClassicLayout returns the built-in layout.
func ClassicLayout() Layout {
	l, err := NewLayout(config.DefaultChaseConfig())
	if err != nil {
		panic(fmt.Sprintf("chase: classic layout: %v", err))
	}
	return l
}

// NewLayout converts typed configuration into a Layout. Shape errors are
// reported here; geometric checks happen when a Session is built.
func NewLayout(cfg config.ChaseConfig) (Layout, error) {
	l := Layout{
		Speed:          cfg.Player.Speed,
		TickRate:       cfg.Timing.TickRate,
		EndTickRate:    cfg.Timing.EndTickRate,
		CellW:          cfg.Render.CellWidth,
		CellH:          cfg.Render.CellHeight,
		HoldOnOverflow: cfg.LegacyOverflowHold,
		Player:         core.NewRect(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height),
		Grid: GridSpec{
			Rows:    cfg.Collectibles.Rows,
			Cols:    cfg.Collectibles.Cols,
			Pitch:   cfg.Collectibles.Pitch,
			OffsetX: cfg.Collectibles.OffsetX,
			OffsetY: cfg.Collectibles.OffsetY,
			Size:    cfg.Collectibles.Size,
			Reserved: CellSpan{
				RowMin: cfg.Collectibles.Reserved.RowMin,
				RowMax: cfg.Collectibles.Reserved.RowMax,
				ColMin: cfg.Collectibles.Reserved.ColMin,
				ColMax: cfg.Collectibles.Reserved.ColMax,
			},
		},
	}

	if l.TickRate <= 0 || l.EndTickRate <= 0 {
		return Layout{}, ErrInvalidTiming
	}
	if l.Player.Empty() || l.Speed <= 0 {
		return Layout{}, fmt.Errorf("player: %w", ErrInvalidActor)
	}
	if l.CellW <= 0 {
		l.CellW = 15
	}
	if l.CellH <= 0 {
		l.CellH = 30
	}

	for i, w := range cfg.Maze.Walls {
		r, err := rectFrom(w)
		if err != nil {
			return Layout{}, fmt.Errorf("wall %d: %w", i, err)
		}
		l.Walls = append(l.Walls, r)
	}

	if len(cfg.Maze.Gate) > 0 {
		g, err := rectFrom(cfg.Maze.Gate)
		if err != nil {
			return Layout{}, fmt.Errorf("gate: %w", err)
		}
		l.Gate = &g
	}

	for _, p := range cfg.Pursuers {
		spec := PursuerSpec{
			Name:    p.Name,
			Variant: p.Variant,
			Spawn:   core.NewRect(p.X, p.Y, p.Width, p.Height),
		}
		if spec.Variant == "" {
			spec.Variant = p.Name
		}
		if spec.Spawn.Empty() {
			return Layout{}, fmt.Errorf("pursuer %s: %w", p.Name, ErrInvalidActor)
		}
		for i, step := range p.Script {
			if len(step) != 3 {
				return Layout{}, fmt.Errorf("pursuer %s step %d: %w", p.Name, i, ErrInvalidStep)
			}
			spec.Script = append(spec.Script, Waypoint{DX: step[0], DY: step[1], Ticks: step[2]})
		}
		l.Pursuers = append(l.Pursuers, spec)
	}

	return l, nil
}

func rectFrom(v []int) (core.Rect, error) {
	if len(v) != 4 {
		return core.Rect{}, ErrInvalidRect
	}
	return core.NewRect(v[0], v[1], v[2], v[3]), nil
}
