package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedChaseMatchesDefaults(t *testing.T) {
	var cfg ChaseConfig
	if err := yaml.Unmarshal(defaultChaseYAML, &cfg); err != nil {
		t.Fatalf("embedded chase.yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultChaseConfig()) {
		t.Error("embedded chase.yaml and DefaultChaseConfig() have drifted apart")
	}
}

func TestDefaultChaseShape(t *testing.T) {
	cfg := DefaultChaseConfig()

	if len(cfg.Maze.Walls) != 38 {
		t.Errorf("expected 38 walls, got %d", len(cfg.Maze.Walls))
	}
	if len(cfg.Pursuers) != 4 {
		t.Fatalf("expected 4 pursuers, got %d", len(cfg.Pursuers))
	}

	lengths := map[string]int{"pinky": 18, "blinky": 28, "inky": 31, "clyde": 17}
	for _, p := range cfg.Pursuers {
		if got := len(p.Script); got != lengths[p.Name] {
			t.Errorf("%s script has %d steps, expected %d", p.Name, got, lengths[p.Name])
		}
		for i, step := range p.Script {
			if len(step) != 3 {
				t.Errorf("%s step %d has %d values", p.Name, i, len(step))
			}
		}
	}

	if cfg.Timing.TickRate != 10 || cfg.Timing.EndTickRate != 60 {
		t.Errorf("unexpected timing %+v", cfg.Timing)
	}
}

func TestLoadChaseCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	data := `
timing:
  tick_rate: 20
  end_tick_rate: 30
player: {x: 10, y: 10, width: 8, height: 8, speed: 4}
maze:
  walls:
    - [0, 0, 100, 2]
pursuers:
  - name: clyde
    x: 50
    y: 50
    width: 8
    height: 8
    script:
      - [1, 0, 2]
      - [0, 1, 2]
      - [-1, 0, 2]
legacy_overflow_hold: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadChase(path)
	if err != nil {
		t.Fatalf("LoadChase() failed: %v", err)
	}

	if cfg.Timing.TickRate != 20 {
		t.Errorf("TickRate = %d, expected 20", cfg.Timing.TickRate)
	}
	if cfg.Player.Speed != 4 {
		t.Errorf("Player.Speed = %d, expected 4", cfg.Player.Speed)
	}
	if len(cfg.Maze.Walls) != 1 || len(cfg.Maze.Gate) != 0 {
		t.Errorf("unexpected maze %+v", cfg.Maze)
	}
	if len(cfg.Pursuers) != 1 || len(cfg.Pursuers[0].Script) != 3 {
		t.Errorf("unexpected pursuers %+v", cfg.Pursuers)
	}
	if !cfg.LegacyOverflowHold {
		t.Error("LegacyOverflowHold should be true")
	}
}

func TestLoadChaseErrors(t *testing.T) {
	if _, err := LoadChase(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("maze: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadChase(bad); err == nil {
		t.Error("expected parse error for malformed config")
	}
}
