package chase

import (
	"errors"
	"testing"
)

func TestWaypointScenario(t *testing.T) {
	c, err := NewWaypointController("blinky", "blinky",
		[]Waypoint{{DX: 0, DY: -1, Ticks: 4}, {DX: 1, DY: 0, Ticks: 9}}, WaypointOptions{})
	if err != nil {
		t.Fatalf("NewWaypointController: %v", err)
	}

	var prev Vec
	for i := 0; i < 4; i++ {
		prev = c.Next(prev)
		if prev != (Vec{DX: 0, DY: -1}) {
			t.Fatalf("tick %d: displacement %+v, want (0,-1)", i+1, prev)
		}
	}
	if got := c.Cursor(); got != (Cursor{Index: 1, Elapsed: 0}) {
		t.Fatalf("after 4 ticks cursor = %+v, want {1 0}", got)
	}

	for i := 0; i < 9; i++ {
		prev = c.Next(prev)
		if prev != (Vec{DX: 1, DY: 0}) {
			t.Fatalf("tick %d: displacement %+v, want (1,0)", i+5, prev)
		}
	}
	if got := c.Cursor(); got != (Cursor{Index: 0, Elapsed: 0}) {
		t.Errorf("after 13 ticks cursor = %+v, want {0 0}", got)
	}
}

func TestWaypointWrapTargets(t *testing.T) {
	script := []Waypoint{
		{DX: 0, DY: -1, Ticks: 2},
		{DX: 1, DY: 0, Ticks: 3},
		{DX: 0, DY: 1, Ticks: 1},
		{DX: -1, DY: 0, Ticks: 5},
	}

	tests := []struct {
		variant  string
		wantWrap int
	}{
		{"blinky", 0},
		{"pinky", 0},
		{"inky", 0},
		{"", 0},
		{"clyde", 2},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			c, err := NewWaypointController(tt.variant, tt.variant, script, WaypointOptions{})
			if err != nil {
				t.Fatalf("NewWaypointController: %v", err)
			}
			if c.WrapIndex() != tt.wantWrap {
				t.Errorf("WrapIndex = %d, want %d", c.WrapIndex(), tt.wantWrap)
			}

			d := c.TotalTicks()
			for i := 0; i < d; i++ {
				c.Next(Vec{})
			}
			if got := c.Cursor(); got != (Cursor{Index: tt.wantWrap}) {
				t.Errorf("after %d ticks cursor = %+v, want {%d 0}", d, got, tt.wantWrap)
			}

			// A full lap from the wrap target returns to it.
			for i := 0; i < c.LapTicks(); i++ {
				c.Next(Vec{})
			}
			if got := c.Cursor(); got != (Cursor{Index: tt.wantWrap}) {
				t.Errorf("after a lap cursor = %+v, want {%d 0}", got, tt.wantWrap)
			}
		})
	}
}

func TestWaypointValidation(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		script  []Waypoint
		want    error
	}{
		{"empty", "blinky", nil, ErrEmptyScript},
		{"zero ticks", "blinky", []Waypoint{{DX: 1, Ticks: 0}}, ErrInvalidWaypoint},
		{"clyde too short", "clyde", []Waypoint{{DX: 1, Ticks: 1}, {DY: 1, Ticks: 1}}, ErrWrapOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWaypointController(tt.variant, tt.variant, tt.script, WaypointOptions{})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWaypointScriptIsCopied(t *testing.T) {
	script := []Waypoint{{DX: 1, Ticks: 1}}
	c, err := NewWaypointController("inky", "inky", script, WaypointOptions{})
	if err != nil {
		t.Fatal(err)
	}
	script[0].DX = 99
	if got := c.Next(Vec{}); got.DX != 1 {
		t.Errorf("controller saw caller mutation: %+v", got)
	}
}

func TestWaypointOverflowRecovery(t *testing.T) {
	script := []Waypoint{{DX: 0, DY: -1, Ticks: 2}, {DX: 1, DY: 0, Ticks: 2}}
	prev := Vec{DX: -1, DY: 0}

	t.Run("immediate reset", func(t *testing.T) {
		c, _ := NewWaypointController("pinky", "pinky", script, WaypointOptions{})
		c.cursor = Cursor{Index: 7, Elapsed: 3}

		got := c.Next(prev)
		if got != (Vec{DX: 0, DY: -1}) {
			t.Errorf("displacement = %+v, want script[0]", got)
		}
		if c.Cursor() != (Cursor{Index: 0, Elapsed: 1}) {
			t.Errorf("cursor = %+v, want {0 1}", c.Cursor())
		}
	})

	t.Run("legacy hold", func(t *testing.T) {
		c, _ := NewWaypointController("pinky", "pinky", script, WaypointOptions{HoldOnOverflow: true})
		c.cursor = Cursor{Index: -1}

		if got := c.Next(prev); got != prev {
			t.Errorf("displacement = %+v, want previous %+v", got, prev)
		}
		if c.Cursor() != (Cursor{}) {
			t.Errorf("cursor = %+v, want reset {0 0}", c.Cursor())
		}
		if got := c.Next(prev); got != (Vec{DX: 0, DY: -1}) {
			t.Errorf("next displacement = %+v, want script[0]", got)
		}
	})
}
