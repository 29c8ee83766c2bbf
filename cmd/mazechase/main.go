// mazechase is a maze-chase arcade game for the terminal.
//
// Usage:
//
//	mazechase play            - Log in and play in this terminal
//	mazechase register <name> - Create an account
//	mazechase scores          - Show the best players and recent runs
//	mazechase serve           - Start SSH server for remote play
//	mazechase maze            - Print the maze layout
//
// Global flags:
//
//	--db <path>         - Database path (default: ~/.mazechase/mazechase.db)
//	--config <path>     - Custom maze config YAML
//	--log-level <level> - debug, info, warn or error
//	--key-hold <dur>    - How long a direction stays held after its last key repeat
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
)

var (
	// Global flags
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagKeyHold  time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - collect every dot before the pursuers catch you",
	Long: `Maze Chase is a terminal arcade game. Steer through the maze,
collect every dot and stay away from the four pursuers.

Available commands:
  play      - Log in and play in this terminal
  register  - Create an account
  scores    - View the best players and recent runs
  serve     - Start SSH server for remote play
  maze      - Print the maze layout

Settings are read from flags, then MAZECHASE_* environment variables
(optionally from a .env file), then built-in defaults.

Examples:
  mazechase play
  mazechase register alice
  mazechase serve --ssh :2222
  mazechase scores --user alice`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	def := config.DefaultEnv()
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", def.DBPath, "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom maze config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", def.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().DurationVar(&flagKeyHold, "key-hold", tui.DefaultKeyHold,
		"How long a direction counts as held after its last key repeat")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mazeCmd)
}

// applyEnv fills flags the user did not set from the environment and .env.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if f := flags.Lookup("ssh"); f != nil && !f.Changed {
		flagSSHAddr = env.SSHAddr
	}
	return nil
}
