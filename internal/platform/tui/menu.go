package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScoreboard
	ChoiceExit
)

var menuItems = []struct {
	choice MenuChoice
	title  string
}{
	{ChoicePlay, "Play"},
	{ChoiceScoreboard, "Scoreboard"},
	{ChoiceExit, "Exit"},
}

// MenuModel is the main menu: the player's current and best score plus
// play, scoreboard and exit. Exit asks for confirmation.
type MenuModel struct {
	username     string
	currentScore int
	bestScore    int
	cursor       int
	confirming   bool
	choice       MenuChoice
	keyMapper    *KeyMapper
	theme        Theme
	width        int
	height       int
}

// NewMenuModel creates a menu for username.
func NewMenuModel(username string, current, best, width, height int) MenuModel {
	return MenuModel{
		username:     username,
		currentScore: current,
		bestScore:    best,
		keyMapper:    NewKeyMapper(),
		theme:        DefaultTheme(),
		width:        width,
		height:       height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirm(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.confirming = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		c := menuItems[m.cursor].choice
		if c == ChoiceExit {
			m.confirming = true
			return m, nil
		}
		m.choice = c
	}
	return m, nil
}

func (m MenuModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter", "ctrl+c":
		m.choice = ChoiceExit
	case "n", "N", "esc", "b":
		m.confirming = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("M A Z E   C H A S E"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Label.Render("Player        "))
	b.WriteString(m.theme.Value.Render(m.username))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Current score "))
	b.WriteString(m.theme.Value.Render(fmt.Sprintf("%d", m.currentScore)))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Best score    "))
	b.WriteString(m.theme.Value.Render(fmt.Sprintf("%d", m.bestScore)))
	b.WriteString("\n\n")

	if m.confirming {
		b.WriteString(m.theme.ConfirmText.Render("Are you sure you want to exit?"))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Help.Render("Y: Exit  |  N: Stay"))
		return centerBlock(m.theme.Panel.Render(b.String()), m.width, m.height)
	}

	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(m.theme.ItemActive.Render("> " + item.title))
		} else {
			b.WriteString(m.theme.ItemNormal.Render("  " + item.title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Exit"))

	return centerBlock(m.theme.Panel.Render(b.String()), m.width, m.height)
}

// Choice returns the confirmed selection, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Confirming reports whether the exit confirmation is showing.
func (m MenuModel) Confirming() bool {
	return m.confirming
}
