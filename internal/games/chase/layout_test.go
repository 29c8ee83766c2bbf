package chase

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mazechase/internal/config"
)

func TestNewLayoutFromDefaults(t *testing.T) {
	l, err := NewLayout(config.DefaultChaseConfig())
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if len(l.Walls) != 38 {
		t.Errorf("walls = %d, want 38", len(l.Walls))
	}
	if l.Gate == nil || l.Gate.X != 282 || l.Gate.H != 2 {
		t.Errorf("gate = %+v", l.Gate)
	}
	if l.TickRate != 10 || l.EndTickRate != 60 {
		t.Errorf("rates = %d/%d", l.TickRate, l.EndTickRate)
	}
	if l.HoldOnOverflow {
		t.Error("legacy overflow hold should be off by default")
	}
	for _, p := range l.Pursuers {
		if p.Variant != p.Name {
			t.Errorf("%s variant = %q, want name", p.Name, p.Variant)
		}
	}
}

func TestNewLayoutErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ChaseConfig)
		want   error
	}{
		{"short wall", func(c *config.ChaseConfig) { c.Maze.Walls[0] = []int{1, 2, 3} }, ErrInvalidRect},
		{"bad gate", func(c *config.ChaseConfig) { c.Maze.Gate = []int{1} }, ErrInvalidRect},
		{"bad step", func(c *config.ChaseConfig) { c.Pursuers[0].Script[0] = []int{1, 0} }, ErrInvalidStep},
		{"zero speed", func(c *config.ChaseConfig) { c.Player.Speed = 0 }, ErrInvalidActor},
		{"zero tick rate", func(c *config.ChaseConfig) { c.Timing.TickRate = 0 }, ErrInvalidTiming},
		{"flat pursuer", func(c *config.ChaseConfig) { c.Pursuers[1].Width = 0 }, ErrInvalidActor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultChaseConfig()
			tt.mutate(&cfg)
			if _, err := NewLayout(cfg); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewLayoutLegacyHold(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	cfg.LegacyOverflowHold = true
	l, err := NewLayout(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !l.HoldOnOverflow {
		t.Error("HoldOnOverflow not carried over")
	}
}
