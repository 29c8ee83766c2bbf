package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/account"
	"github.com/vovakirdan/mazechase/internal/games/chase"
	"github.com/vovakirdan/mazechase/internal/scores"
	"github.com/vovakirdan/mazechase/internal/storage"
)

type fakeAuth struct {
	users map[string]string
}

func (a *fakeAuth) Login(username, password string) (*account.User, error) {
	if pw, ok := a.users[username]; ok && pw == password {
		return &account.User{Username: username}, nil
	}
	return nil, account.ErrInvalidCredentials
}

func (a *fakeAuth) Register(username, password string) (*account.User, error) {
	if _, ok := a.users[username]; ok {
		return nil, account.ErrUserExists
	}
	a.users[username] = password
	return &account.User{Username: username}, nil
}

type fakeScores struct {
	best map[string]int
	err  error
}

func (s fakeScores) BestScore(username string) (int, error) {
	return s.best[username], s.err
}

func (s fakeScores) TopPlayers(limit int) ([]storage.PlayerEntry, error) {
	return []storage.PlayerEntry{{Username: "alice", BestScore: s.best["alice"], Runs: 1}}, s.err
}

func (s fakeScores) RecentRuns(username string, limit int) ([]storage.Run, error) {
	return nil, s.err
}

func updateApp(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func testDeps() Deps {
	return Deps{
		Scores: fakeScores{best: map[string]int{"alice": 12}},
		Layout: chase.ClassicLayout(),
	}
}

func TestAppWithoutAccountsStartsAtMenu(t *testing.T) {
	m := NewAppModel(testDeps(), "alice", 80, 30)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if m.menu.bestScore != 12 {
		t.Errorf("best score = %d, want 12", m.menu.bestScore)
	}
}

func TestAppLoginLeadsToMenu(t *testing.T) {
	deps := testDeps()
	deps.Accounts = &fakeAuth{users: map[string]string{}}
	m := NewAppModel(deps, "alice", 80, 30)
	if m.screen != screenLogin {
		t.Fatalf("screen = %v, want login", m.screen)
	}

	m, _ = updateApp(t, m, authResultMsg{err: account.ErrInvalidCredentials})
	if m.screen != screenLogin || m.login.errMsg == "" {
		t.Fatal("failed login should stay on the form with an error")
	}

	m, _ = updateApp(t, m, authResultMsg{user: &account.User{Username: "alice"}})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if m.Username() != "alice" {
		t.Errorf("Username = %q, want alice", m.Username())
	}
}

func TestAppPlayAndReturnKeepsLastScore(t *testing.T) {
	m := NewAppModel(testDeps(), "alice", 80, 30)

	m, cmd := updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if cmd == nil {
		t.Fatal("starting a game should schedule a tick")
	}
	gen := m.gen

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = updateApp(t, m, TickMsg{Gen: gen})
	m, _ = updateApp(t, m, runeKey("p"))
	m, _ = updateApp(t, m, TickMsg{Gen: gen})
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if m.menu.currentScore != 1 {
		t.Errorf("current score = %d, want 1", m.menu.currentScore)
	}
	if m.menu.bestScore != 12 {
		t.Errorf("best score = %d, want 12", m.menu.bestScore)
	}

	// A new round uses a new tick generation.
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gen == gen {
		t.Error("new game should use a new tick generation")
	}
}

func TestAppScoreboardRoundTrip(t *testing.T) {
	m := NewAppModel(testDeps(), "alice", 80, 30)

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", m.screen)
	}
	if len(m.scoreboard.table.Rows()) != 1 {
		t.Errorf("rows = %d, want 1", len(m.scoreboard.table.Rows()))
	}

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu", m.screen)
	}
}

func TestAppBestScoreFallsBackToLastScore(t *testing.T) {
	deps := testDeps()
	deps.Scores = fakeScores{err: errors.New("db down")}
	m := NewAppModel(deps, "bob", 80, 30)
	m.lastScore = 5
	m.toMenu()

	if m.menu.bestScore != 5 {
		t.Errorf("best score = %d, want 5", m.menu.bestScore)
	}
}

func TestAppMenuReadsLiveScoreFromReporter(t *testing.T) {
	n := scores.NewNotifier(nil, nil)
	t.Cleanup(n.Close)

	n.ReportScore("alice", 33) //nolint:errcheck // left over from an earlier round
	deps := testDeps()
	deps.Reporter = n
	m := NewAppModel(deps, "alice", 80, 30)

	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if got := n.Latest("alice"); got != 0 {
		t.Errorf("Latest = %d after a new round, want 0", got)
	}

	gen := m.gen
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = updateApp(t, m, TickMsg{Gen: gen})
	if got := n.Latest("alice"); got != 1 {
		t.Errorf("Latest = %d, want 1", got)
	}

	m, _ = updateApp(t, m, runeKey("p"))
	m, _ = updateApp(t, m, TickMsg{Gen: gen})
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if m.menu.currentScore != 1 {
		t.Errorf("current score = %d, want 1", m.menu.currentScore)
	}
}
