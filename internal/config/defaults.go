package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the classic maze-chase configuration.
// It mirrors defaults/chase.yaml and is used when the embedded file cannot be parsed.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Timing: ChaseTiming{
			TickRate:    10,
			EndTickRate: 60,
		},
		Player: ChaseActor{X: 287, Y: 439, Width: 32, Height: 32, Speed: 30},
		Maze: ChaseMaze{
			Walls: [][]int{
				{0, 0, 6, 600}, {0, 0, 600, 6}, {0, 600, 606, 6}, {600, 0, 6, 606},
				{300, 0, 6, 66}, {60, 60, 186, 6}, {360, 60, 186, 6}, {60, 120, 66, 6},
				{60, 120, 6, 126}, {180, 120, 246, 6}, {300, 120, 6, 66}, {480, 120, 66, 6},
				{540, 120, 6, 126}, {120, 180, 126, 6}, {120, 180, 6, 126}, {360, 180, 126, 6},
				{480, 180, 6, 126}, {180, 240, 6, 126}, {180, 360, 246, 6}, {420, 240, 6, 126},
				{240, 240, 42, 6}, {324, 240, 42, 6}, {240, 240, 6, 66}, {240, 300, 126, 6},
				{360, 240, 6, 66}, {0, 300, 66, 6}, {540, 300, 66, 6}, {60, 360, 66, 6},
				{60, 360, 6, 186}, {480, 360, 66, 6}, {540, 360, 6, 186}, {120, 420, 366, 6},
				{120, 420, 6, 66}, {480, 420, 6, 66}, {180, 480, 246, 6}, {300, 480, 6, 66},
				{120, 540, 126, 6}, {360, 540, 126, 6},
			},
			Gate: []int{282, 242, 42, 2},
		},
		Pursuers: []ChasePursuer{
			{
				Name: "pinky", X: 287, Y: 259, Width: 32, Height: 32,
				Script: [][]int{
					{0, -30, 4}, {15, 0, 9}, {0, 15, 11}, {-15, 0, 23}, {0, 15, 7}, {15, 0, 3},
					{0, -15, 3}, {15, 0, 19}, {0, 15, 3}, {15, 0, 3}, {0, 15, 3}, {15, 0, 3},
					{0, -15, 15}, {-15, 0, 7}, {0, 15, 3}, {-15, 0, 19}, {0, -15, 11}, {15, 0, 9},
				},
			},
			{
				Name: "blinky", X: 287, Y: 199, Width: 32, Height: 32,
				Script: [][]int{
					{0, -15, 4}, {15, 0, 9}, {0, 15, 11}, {15, 0, 3}, {0, 15, 7}, {-15, 0, 11},
					{0, 15, 3}, {15, 0, 15}, {0, -15, 15}, {15, 0, 3}, {0, -15, 11}, {-15, 0, 3},
					{0, -15, 11}, {-15, 0, 3}, {0, -15, 3}, {-15, 0, 7}, {0, -15, 3}, {15, 0, 15},
					{0, 15, 15}, {-15, 0, 3}, {0, 15, 3}, {-15, 0, 3}, {0, -15, 7}, {-15, 0, 3},
					{0, 15, 7}, {-15, 0, 11}, {0, -15, 7}, {15, 0, 5},
				},
			},
			{
				Name: "inky", X: 255, Y: 259, Width: 32, Height: 32,
				Script: [][]int{
					{30, 0, 2}, {0, -15, 4}, {15, 0, 10}, {0, 15, 7}, {15, 0, 3}, {0, -15, 3},
					{15, 0, 3}, {0, -15, 15}, {-15, 0, 15}, {0, 15, 3}, {15, 0, 15}, {0, 15, 11},
					{-15, 0, 3}, {0, -15, 7}, {-15, 0, 11}, {0, 15, 3}, {-15, 0, 11}, {0, 15, 7},
					{-15, 0, 3}, {0, -15, 3}, {-15, 0, 3}, {0, -15, 15}, {15, 0, 15}, {0, 15, 3},
					{-15, 0, 15}, {0, 15, 11}, {15, 0, 3}, {0, -15, 11}, {15, 0, 11}, {0, 15, 3},
					{15, 0, 1},
				},
			},
			{
				Name: "clyde", X: 319, Y: 259, Width: 32, Height: 32,
				Script: [][]int{
					{-30, 0, 2}, {0, -15, 4}, {15, 0, 5}, {0, 15, 7}, {-15, 0, 11}, {0, -15, 7},
					{-15, 0, 3}, {0, 15, 7}, {-15, 0, 7}, {0, 15, 15}, {15, 0, 15}, {0, -15, 3},
					{-15, 0, 11}, {0, -15, 7}, {15, 0, 3}, {0, -15, 11}, {15, 0, 9},
				},
			},
		},
		Collectibles: ChaseCollectibles{
			Rows:    19,
			Cols:    19,
			Pitch:   30,
			OffsetX: 32,
			OffsetY: 32,
			Size:    4,
			Reserved: ChaseCellSpan{
				RowMin: 7,
				RowMax: 8,
				ColMin: 8,
				ColMax: 10,
			},
		},
		Render: ChaseRender{
			CellWidth:  15,
			CellHeight: 30,
		},
	}
}
