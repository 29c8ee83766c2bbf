// Package config provides YAML-based game configuration loading and
// environment overrides for the maze-chase game.
package config

import (
	"os"
	"path/filepath"
)

// appDirName is the per-user state directory under the home directory.
const appDirName = ".mazechase"

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDirName, "configs", filename)
}
