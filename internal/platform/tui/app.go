package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/chase"
)

// Deps are the services the screens run against.
type Deps struct {
	// Accounts authenticates players. Nil skips the login screen.
	Accounts Authenticator
	// Scores feeds the menu and the scoreboard. May be nil.
	Scores ScoreSource
	// Reporter receives score updates from every round. May be nil.
	Reporter chase.ScoreReporter
	Layout   chase.Layout
	Logger   *log.Logger
	KeyHold  time.Duration
}

// LiveScores reports the score a player reached during play.
// *scores.Notifier implements it.
type LiveScores interface {
	Latest(username string) int
	ResetLatest(username string)
}

type appScreen int

const (
	screenLogin appScreen = iota
	screenMenu
	screenGame
	screenScoreboard
)

// AppModel routes between login, menu, game and scoreboard.
type AppModel struct {
	deps       Deps
	screen     appScreen
	username   string
	lastScore  int
	width      int
	height     int
	gen        int
	login      LoginModel
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	quitting   bool
	err        string
}

// NewAppModel creates the top-level model. username prefills the login form,
// or names the player directly when there is no Authenticator.
func NewAppModel(deps Deps, username string, width, height int) AppModel {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	m := AppModel{
		deps:     deps,
		username: username,
		width:    width,
		height:   height,
	}
	if deps.Accounts == nil {
		m.toMenu()
	} else {
		m.screen = screenLogin
		m.login = NewLoginModel(deps.Accounts, username, width, height)
	}
	return m
}

// Init starts the first screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenLogin {
		return m.login.Init()
	}
	return nil
}

// Update routes a message to the current screen and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.login.Update(msg)
	m.login = next.(LoginModel)

	if m.login.IsQuitting() {
		m.quitting = true
		return m, cmd
	}
	if u := m.login.User(); u != nil {
		m.username = u.Username
		m.deps.Logger.Info("player signed in", "user", u.Username)
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Choice() {
	case ChoiceExit:
		m.quitting = true
		return m, tea.Quit
	case ChoicePlay:
		return m.startGame()
	case ChoiceScoreboard:
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.deps.Scores, m.username, m.width, m.height)
		return m, m.scoreboard.Init()
	}
	return m, cmd
}

func (m AppModel) startGame() (tea.Model, tea.Cmd) {
	g, err := chase.New(m.deps.Layout, chase.SessionOptions{
		Username: m.username,
		Reporter: m.deps.Reporter,
		Logger:   m.deps.Logger,
	})
	if err != nil {
		m.deps.Logger.Error("cannot start game", "err", err)
		m.err = err.Error()
		m.toMenu()
		return m, nil
	}

	cfg := core.DefaultConfig()
	if m.width > 0 && m.height > 0 {
		cfg.ScreenW, cfg.ScreenH = m.width, m.height
	}

	if live, ok := m.deps.Reporter.(LiveScores); ok {
		live.ResetLatest(m.username)
	}

	m.gen++
	m.err = ""
	m.screen = screenGame
	m.game = NewGameModel(g, cfg, m.deps.KeyHold, m.gen)
	m.deps.Logger.Debug("game started", "user", m.username, "session", g.Session().ID())
	return m, m.game.Init()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, cmd
	}
	if m.game.BackToMenu() {
		m.lastScore = m.game.State().Score
		if live, ok := m.deps.Reporter.(LiveScores); ok {
			m.lastScore = live.Latest(m.username)
		}
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, cmd
	}
	if m.scoreboard.IsGoingBack() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

// toMenu switches to a fresh menu. The stored best score may lag behind the
// round that just ended, so the last score counts too.
func (m *AppModel) toMenu() {
	best := m.lastScore
	if m.deps.Scores != nil && m.username != "" {
		stored, err := m.deps.Scores.BestScore(m.username)
		if err != nil {
			m.deps.Logger.Debug("best score unavailable", "user", m.username, "err", err)
		}
		best = core.Max(best, stored)
	}

	name := m.username
	if name == "" {
		name = "guest"
	}
	m.screen = screenMenu
	m.menu = NewMenuModel(name, m.lastScore, best, m.width, m.height)
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenLogin:
		return m.login.View()
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	if m.err != "" {
		return m.menu.View() + "\n" + m.menu.theme.Error.Render(m.err)
	}
	return m.menu.View()
}

// Username returns the signed-in player, or "" before login.
func (m AppModel) Username() string {
	return m.username
}

// Run plays locally in the current terminal until the player quits.
func Run(deps Deps, username string) error {
	p := tea.NewProgram(NewAppModel(deps, username, 0, 0), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
