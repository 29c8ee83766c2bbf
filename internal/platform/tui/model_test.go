package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/chase"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestGameModel(t *testing.T) (GameModel, *chase.Game, *fakeClock) {
	t.Helper()
	g, err := chase.New(chase.ClassicLayout(), chase.SessionOptions{Username: "alice"})
	if err != nil {
		t.Fatalf("chase.New: %v", err)
	}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 30}, 200*time.Millisecond, 7)
	m.now = clock.now
	return m, g, clock
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelKeyMovesPlayer(t *testing.T) {
	m, g, _ := newTestGameModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := send(t, m, TickMsg{Gen: 7})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	snap := g.Snapshot()
	if snap.Tick != 1 {
		t.Fatalf("Tick = %d, want 1", snap.Tick)
	}
	if snap.PlayerVel.DX >= 0 || snap.PlayerVel.DY != 0 {
		t.Errorf("PlayerVel = %+v, want leftwards", snap.PlayerVel)
	}
	if m.State().Score != 1 {
		t.Errorf("Score = %d, want 1", m.State().Score)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, g, _ := newTestGameModel(t)

	m, cmd := send(t, m, TickMsg{Gen: 6})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("stale tick advanced the session")
	}
	_ = m
}

func TestGameModelRepeatedKeyHoldsAndExpires(t *testing.T) {
	m, g, clock := newTestGameModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, TickMsg{Gen: 7})

	// Auto-repeat inside the hold window must not push a second vector.
	clock.t = clock.t.Add(100 * time.Millisecond)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, TickMsg{Gen: 7})
	vel := g.Snapshot().PlayerVel
	if vel.DX != -g.Layout().Speed {
		t.Errorf("PlayerVel.DX = %d, want %d", vel.DX, -g.Layout().Speed)
	}

	clock.t = clock.t.Add(300 * time.Millisecond)
	_, _ = send(t, m, TickMsg{Gen: 7})
	if vel := g.Snapshot().PlayerVel; vel != (chase.Vec{}) {
		t.Errorf("PlayerVel after release = %+v, want zero", vel)
	}
}

func TestGameModelEscWhilePausedReturnsToMenu(t *testing.T) {
	m, _, _ := newTestGameModel(t)

	m, _ = send(t, m, runeKey("p"))
	m, _ = send(t, m, TickMsg{Gen: 7})
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc while paused should go back to menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _, _ := newTestGameModel(t)

	m, cmd := send(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestGameModelViewShowsHUD(t *testing.T) {
	m, _, _ := newTestGameModel(t)

	if !strings.Contains(m.View(), "Score: 0/209") {
		t.Error("View should include the HUD")
	}
}
