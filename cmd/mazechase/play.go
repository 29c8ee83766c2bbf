package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/platform/tui"
)

var flagUser string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Log in and play",
	Long: `Log in (or create an account with Ctrl+R) and play in this terminal.

Controls:
  Arrows/WASD/HJKL - Move
  P/Space          - Pause
  Esc              - Back to menu (while paused or after a round)
  Enter            - Play again (after a round)
  Q/Ctrl+C         - Quit

Logs go to ~/.mazechase/mazechase.log.

Examples:
  mazechase play
  mazechase play --user alice
  mazechase play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUser, "user", "", "Prefill the login username")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		w = f
	}
	logger, err := newLogger(w, "mazechase")
	if err != nil {
		return err
	}

	svc, err := openServices(logger)
	if err != nil {
		return err
	}
	defer svc.Close() //nolint:errcheck // best-effort on exit

	return tui.Run(svc.deps, flagUser)
}
