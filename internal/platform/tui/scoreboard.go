package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazechase/internal/storage"
)

const maxRows = 100

// ScoreSource is the read side of the score store.
// *storage.Store implements it.
type ScoreSource interface {
	BestScore(username string) (int, error)
	TopPlayers(limit int) ([]storage.PlayerEntry, error)
	RecentRuns(username string, limit int) ([]storage.Run, error)
}

// scoreboardView selects which table is shown.
type scoreboardView int

const (
	viewTopPlayers scoreboardView = iota
	viewMyRuns
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "players/my runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best players, or the signed-in player's runs.
type ScoreboardModel struct {
	source    ScoreSource
	username  string
	view      scoreboardView
	players   []storage.PlayerEntry
	runs      []storage.Run
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard and loads the player ranking.
func NewScoreboardModel(source ScoreSource, username string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source:   source,
		username: username,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		width:    width,
		height:   height,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewMyRuns {
		return []table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Result", Width: 8},
			{Title: "Date", Width: 14},
		}
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 20},
		{Title: "Best", Width: 6},
		{Title: "Runs", Width: 6},
		{Title: "Wins", Width: 6},
	}
}

func (m *ScoreboardModel) createTable(rows []table.Row) table.Model {
	h := m.height - 10 // title, tabs, help and borders
	if h < 3 {
		h = 3
	}
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current view from the source and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.players, m.runs, m.loadErr = nil, nil, nil
	if m.source != nil {
		if m.view == viewMyRuns {
			m.runs, m.loadErr = m.source.RecentRuns(m.username, maxRows)
		} else {
			m.players, m.loadErr = m.source.TopPlayers(maxRows)
		}
	}
	m.table = m.createTable(m.rows())
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.view == viewMyRuns {
		rows := make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d/%d", r.Score, r.Total),
				r.Outcome,
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}

	rows := make([]table.Row, len(m.players))
	for i, p := range m.players {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			p.Username,
			fmt.Sprintf("%d", p.BestScore),
			fmt.Sprintf("%d", p.Runs),
			fmt.Sprintf("%d", p.Wins),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewTopPlayers {
				m.view = viewMyRuns
			} else {
				m.view = viewTopPlayers
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable(m.rows())
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	tabs := []string{"Top players", "My runs"}
	for i, t := range tabs {
		if scoreboardView(i) == m.view {
			tabs[i] = m.theme.ItemActive.Render(t)
		} else {
			tabs[i] = m.theme.ItemNormal.Render(" " + t + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(m.theme.Error.Render("Could not load scores."))
	case len(m.table.Rows()) == 0:
		b.WriteString(m.theme.Subtitle.Italic(true).Render("No scores recorded yet.\nPlay a round to get on the board!"))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return centerBlock(m.theme.Panel.Render(b.String()), m.width, m.height)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
