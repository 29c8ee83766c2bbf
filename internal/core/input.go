package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionRestart          // Enter - play again from the end screen
	ActionTerminate        // Escape - leave from the end screen
	ActionPause            // P - pause/unpause game
	ActionQuit             // Q, Ctrl+C - exit program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionTerminate:
		return "Terminate"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is one of the four movement keys.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Unit returns the unit vector of the direction in screen coordinates
// (y grows downwards).
func (d Direction) Unit() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyEvent is a direction key going down (pressed) or up (released).
type KeyEvent struct {
	Dir     Direction
	Pressed bool
}

// InputFrame represents the input state for the player during one simulation tick.
// Actions are edge-triggered; key events are replayed in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Keys holds direction presses and releases in the order they happened.
	Keys []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a direction key going down.
func (f *InputFrame) Press(d Direction) {
	f.Keys = append(f.Keys, KeyEvent{Dir: d, Pressed: true})
}

// Release records a direction key going up.
func (f *InputFrame) Release(d Direction) {
	f.Keys = append(f.Keys, KeyEvent{Dir: d, Pressed: false})
}

// Clear resets all actions and key events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}
