package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/chase"
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print the maze layout",
	Long: `Print the maze as it looks at the start of a round, with the number
of collectibles and the pursuers' routes. Useful to check a custom --config.

Examples:
  mazechase maze
  mazechase maze --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func runMaze(cmd *cobra.Command, _ []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}
	s, err := chase.NewSession(layout, chase.SessionOptions{})
	if err != nil {
		return err
	}

	w, h := chase.BoardSize(layout, s.Maze())
	screen := core.NewScreen(w, h)
	chase.DrawBoard(screen, s, layout, 0, 0)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Collectibles: %d\n", s.Total())
	fmt.Fprintf(out, "Tick rate:    %d/s\n", layout.TickRate)
	for _, p := range layout.Pursuers {
		lap := 0
		for _, wp := range p.Script {
			lap += wp.Ticks
		}
		fmt.Fprintf(out, "Pursuer %-6s %d waypoints, %d ticks per lap, wraps to %d\n",
			p.Name, len(p.Script), lap, chase.WrapTarget(p.Variant))
	}
	return nil
}
