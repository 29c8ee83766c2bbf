package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation is deterministic; only the screen size is taken from the terminal.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	Total      int  // Number of collectibles in the session
	GameOver   bool // Whether the session has ended (won or lost)
	Won        bool // Whether the session ended with every collectible taken
	Paused     bool // Whether the game is paused
	Terminated bool // Whether the player asked to leave the game
}

// StepResult is returned by Step() after each tick.
type StepResult struct {
	State GameState
	// Collected is the number of collectibles taken during this tick.
	Collected int
	// TickRate is the rate at which the platform should deliver the next tick.
	TickRate int
}
