package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/chase"
)

// GameModel runs one chase.Game inside Bubble Tea. Ticks are paced at the
// rate the game asks for after every step.
type GameModel struct {
	game       *chase.Game
	screen     *core.Screen
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        int
	round      int
	quitting   bool
	backToMenu bool
	now        func() time.Time
}

// NewGameModel creates a game model. gen must differ from any earlier game
// model's so stale ticks are ignored.
func NewGameModel(game *chase.Game, cfg core.RuntimeConfig, keyHold time.Duration, gen int) GameModel {
	game.Resize(cfg.ScreenW, cfg.ScreenH)
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(keyHold),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		gen:        gen,
		round:      game.Rounds(),
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.gen, m.game.TickRate())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey queues the key for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keyMapper.MapKey(msg)

	switch {
	case k.Action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case k.IsDir:
		if m.held.Observe(k.Dir, m.now()) {
			m.inputFrame.Press(k.Dir)
		}

	case k.Action == core.ActionTerminate && m.gameState.Paused:
		// Esc while paused abandons the round.
		m.backToMenu = true

	case k.Action != core.ActionNone:
		m.inputFrame.Set(k.Action)
	}

	return m, nil
}

// handleTick steps the game once with the input gathered since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	for _, d := range m.held.Expire(m.now()) {
		m.inputFrame.Release(d)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	// A restart starts from a zero displacement; forget held keys.
	if r := m.game.Rounds(); r != m.round {
		m.round = r
		m.held.Reset()
	}

	if result.State.Terminated {
		m.backToMenu = true
		return m, nil
	}

	return m, tickCmd(m.gen, result.TickRate)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
