package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagScoresUser  string
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best players and recent runs",
	Long: `Display the best players and the most recent runs.

Examples:
  mazechase scores
  mazechase scores --user alice --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresUser, "user", "", "Only show runs of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows per table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	players, err := store.TopPlayers(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve players: %w", err)
	}

	fmt.Fprintln(out, "Best players")
	fmt.Fprintln(out)
	if len(players) == 0 {
		fmt.Fprintln(out, "No players yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'mazechase register <name>' and 'mazechase play' to get on the board!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-20s  %-5s  %-5s  %-5s  %s\n", "Rank", "Player", "Best", "Runs", "Wins", "Last played")
	fmt.Fprintf(out, "  %-4s  %-20s  %-5s  %-5s  %-5s  %s\n", "----", "------", "----", "----", "----", "-----------")
	for i, p := range players {
		last := "-"
		if !p.LastPlayed.IsZero() {
			last = p.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-4d  %-20s  %-5d  %-5d  %-5d  %s\n", i+1, p.Username, p.BestScore, p.Runs, p.Wins, last)
	}

	runs, err := store.RecentRuns(flagScoresUser, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve runs: %w", err)
	}

	fmt.Fprintln(out)
	if flagScoresUser != "" {
		fmt.Fprintf(out, "Recent runs - %s\n", flagScoresUser)
	} else {
		fmt.Fprintln(out, "Recent runs")
	}
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(out, "  %s  %-20s  %3d/%-3d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Username, r.Score, r.Total, r.Outcome)
	}
	return nil
}
