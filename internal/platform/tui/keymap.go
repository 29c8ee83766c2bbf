package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameKey is the meaning of one key press during play.
type GameKey struct {
	Action core.Action
	Dir    core.Direction
	IsDir  bool
}

// MapKey translates a key message to an action or a direction.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) GameKey {
	switch msg.String() {
	case "ctrl+c", "q":
		return GameKey{Action: core.ActionQuit}
	case "up", "w", "k":
		return GameKey{Dir: core.DirUp, IsDir: true}
	case "down", "s", "j":
		return GameKey{Dir: core.DirDown, IsDir: true}
	case "left", "a", "h":
		return GameKey{Dir: core.DirLeft, IsDir: true}
	case "right", "d", "l":
		return GameKey{Dir: core.DirRight, IsDir: true}
	case "enter":
		return GameKey{Action: core.ActionRestart}
	case "esc":
		return GameKey{Action: core.ActionTerminate}
	case "p", " ":
		return GameKey{Action: core.ActionPause}
	}
	return GameKey{Action: core.ActionNone}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
