package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvSSHAddr, "")
}

func TestLoadEnvDefaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if env != DefaultEnv() {
		t.Errorf("LoadEnv() = %+v, expected defaults %+v", env, DefaultEnv())
	}
}

func TestLoadEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "MAZECHASE_DB=/tmp/from-file.db\nMAZECHASE_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// Process environment beats the file
	t.Setenv(EnvLogLevel, "warn")

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}

	if env.DBPath != "/tmp/from-file.db" {
		t.Errorf("DBPath = %q, expected value from file", env.DBPath)
	}
	if env.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, expected process environment value", env.LogLevel)
	}
	if env.SSHAddr != DefaultEnv().SSHAddr {
		t.Errorf("SSHAddr = %q, expected default", env.SSHAddr)
	}
}
