package config

// ChaseConfig contains all configuration for the maze-chase game.
// Rectangles are [x, y, width, height] in world pixels; waypoints are
// [dx, dy, ticks] triples.
type ChaseConfig struct {
	Timing       ChaseTiming       `yaml:"timing"`
	Player       ChaseActor        `yaml:"player"`
	Maze         ChaseMaze         `yaml:"maze"`
	Pursuers     []ChasePursuer    `yaml:"pursuers"`
	Collectibles ChaseCollectibles `yaml:"collectibles"`
	Render       ChaseRender       `yaml:"render"`

	// LegacyOverflowHold keeps a pursuer's previous displacement for the tick
	// on which its waypoint cursor is found out of range, instead of applying
	// the reset waypoint immediately.
	LegacyOverflowHold bool `yaml:"legacy_overflow_hold"`
}

// ChaseTiming defines the fixed simulation rates.
type ChaseTiming struct {
	TickRate    int `yaml:"tick_rate"`     // Simulation ticks per second while playing
	EndTickRate int `yaml:"end_tick_rate"` // Input polls per second on the end screen
}

// ChaseActor defines the player's spawn point, sprite size and speed.
type ChaseActor struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels added to the displacement per held key
}

// ChaseMaze defines the static walls and the optional one-way gate.
type ChaseMaze struct {
	Walls [][]int `yaml:"walls"`
	Gate  []int   `yaml:"gate"`
}

// ChasePursuer defines one scripted pursuer.
type ChasePursuer struct {
	Name    string  `yaml:"name"`
	Variant string  `yaml:"variant"` // Wrap-rule variant, defaults to Name
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Script  [][]int `yaml:"script"`
}

// ChaseCollectibles defines the candidate grid for collectible generation.
type ChaseCollectibles struct {
	Rows     int           `yaml:"rows"`
	Cols     int           `yaml:"cols"`
	Pitch    int           `yaml:"pitch"`
	OffsetX  int           `yaml:"offset_x"`
	OffsetY  int           `yaml:"offset_y"`
	Size     int           `yaml:"size"`
	Reserved ChaseCellSpan `yaml:"reserved"`
}

// ChaseCellSpan is an inclusive block of grid cells.
type ChaseCellSpan struct {
	RowMin int `yaml:"row_min"`
	RowMax int `yaml:"row_max"`
	ColMin int `yaml:"col_min"`
	ColMax int `yaml:"col_max"`
}

// ChaseRender defines how world pixels map to terminal cells.
type ChaseRender struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}
