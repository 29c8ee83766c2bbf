package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelectsPlayAndScoreboard(t *testing.T) {
	m := NewMenuModel("alice", 3, 10, 80, 24)

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoicePlay {
		t.Errorf("Choice = %v, want ChoicePlay", m.Choice())
	}

	m = NewMenuModel("alice", 3, 10, 80, 24)
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Choice() != ChoiceScoreboard {
		t.Errorf("Choice = %v, want ChoiceScoreboard", m.Choice())
	}
}

func TestMenuExitNeedsConfirmation(t *testing.T) {
	m := NewMenuModel("alice", 0, 0, 80, 24)

	m = updateMenu(t, m, runeKey("q"))
	if !m.Confirming() || m.Choice() != ChoiceNone {
		t.Fatal("q should ask for confirmation")
	}

	m = updateMenu(t, m, runeKey("n"))
	if m.Confirming() {
		t.Error("n should cancel the confirmation")
	}

	m = updateMenu(t, m, runeKey("q"))
	m = updateMenu(t, m, runeKey("y"))
	if m.Choice() != ChoiceExit {
		t.Errorf("Choice = %v, want ChoiceExit", m.Choice())
	}
}

func TestMenuShowsScores(t *testing.T) {
	view := NewMenuModel("alice", 7, 42, 0, 0).View()
	for _, want := range []string{"alice", "7", "42", "Play", "Scoreboard", "Exit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}
