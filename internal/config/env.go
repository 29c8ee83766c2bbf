package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names understood by the CLI.
const (
	EnvDBPath   = "MAZECHASE_DB"
	EnvLogLevel = "MAZECHASE_LOG_LEVEL"
	EnvSSHAddr  = "MAZECHASE_SSH_ADDR"
)

// Env holds process-level settings that may come from the environment.
type Env struct {
	DBPath   string
	LogLevel string
	SSHAddr  string
}

// DefaultEnv returns the settings used when nothing is configured.
func DefaultEnv() Env {
	return Env{
		DBPath:   "~/" + appDirName + "/mazechase.db",
		LogLevel: "info",
		SSHAddr:  ":23234",
	}
}

// LoadEnv resolves settings from, in order of precedence, the process
// environment, the given dotenv files (default ".env"), and DefaultEnv.
// Missing dotenv files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	fileVars := make(map[string]string)
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return DefaultEnv(), err
		}
		for k, v := range vars {
			if _, seen := fileVars[k]; !seen {
				fileVars[k] = v
			}
		}
	}

	lookup := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v, ok := fileVars[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	def := DefaultEnv()
	return Env{
		DBPath:   lookup(EnvDBPath, def.DBPath),
		LogLevel: lookup(EnvLogLevel, def.LogLevel),
		SSHAddr:  lookup(EnvSSHAddr, def.SSHAddr),
	}, nil
}
