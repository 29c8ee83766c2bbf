package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/account"
)

// Authenticator checks credentials and creates accounts.
// *account.Service implements it.
type Authenticator interface {
	Login(username, password string) (*account.User, error)
	Register(username, password string) (*account.User, error)
}

// LoginKeyMap defines the key bindings for the login form.
type LoginKeyMap struct {
	Next   key.Binding
	Submit key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LoginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LoginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Submit}, {k.Toggle, k.Quit}}
}

// DefaultLoginKeyMap returns default key bindings.
func DefaultLoginKeyMap() LoginKeyMap {
	return LoginKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "login/register"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// authResultMsg carries the outcome of a login or registration attempt.
type authResultMsg struct {
	user *account.User
	err  error
}

// LoginModel is the Bubble Tea model for the login and registration form.
type LoginModel struct {
	auth     Authenticator
	inputs   []textinput.Model // username, password
	focus    int
	register bool
	busy     bool
	errMsg   string
	user     *account.User
	quitting bool
	keys     LoginKeyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
}

// NewLoginModel creates a login form, optionally prefilled with a username.
func NewLoginModel(auth Authenticator, username string, width, height int) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 20
	user.Width = 24
	user.SetValue(username)

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 72 // bcrypt input limit
	pass.Width = 24

	m := LoginModel{
		auth:   auth,
		inputs: []textinput.Model{user, pass},
		keys:   DefaultLoginKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}
	if username != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login form.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case authResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = describeAuthError(msg.err)
			m.inputs[1].SetValue("")
			return m, m.setFocus(1)
		}
		m.user = msg.user
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case m.busy:
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.register = !m.register
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case key.Matches(msg, m.keys.Submit):
			if m.focus == 0 {
				return m, m.setFocus(1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if username == "" || password == "" {
		m.errMsg = "Enter a username and a password."
		return m, nil
	}

	m.busy = true
	m.errMsg = ""
	auth, register := m.auth, m.register
	return m, func() tea.Msg {
		var u *account.User
		var err error
		if register {
			u, err = auth.Register(username, password)
		} else {
			u, err = auth.Login(username, password)
		}
		return authResultMsg{user: u, err: err}
	}
}

func describeAuthError(err error) string {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		return "Wrong username or password."
	case errors.Is(err, account.ErrUserExists):
		return "That username is taken."
	case errors.Is(err, account.ErrWeakPassword):
		return "Password is too weak. Try a longer passphrase."
	case errors.Is(err, account.ErrInvalidUsername):
		return "Username: 3-20 letters, digits or underscores."
	default:
		return "Something went wrong, try again."
	}
}

// View renders the form.
func (m LoginModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("M A Z E   C H A S E"))
	b.WriteString("\n\n")

	mode := "Log in"
	if m.register {
		mode = "Create account"
	}
	b.WriteString(m.theme.Subtitle.Render(mode))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Username "))
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Password "))
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		b.WriteString(m.theme.Subtitle.Render("Checking..."))
	case m.errMsg != "":
		b.WriteString(m.theme.Error.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return centerBlock(m.theme.Panel.Render(b.String()), m.width, m.height)
}

// User returns the authenticated user, or nil.
func (m LoginModel) User() *account.User {
	return m.user
}

// IsQuitting returns true if the user left the form.
func (m LoginModel) IsQuitting() bool {
	return m.quitting
}
