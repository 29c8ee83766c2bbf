package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestMazeCommandPrintsClassicBoard(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"maze"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("maze: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Collectibles: 209", "Pursuer clyde", "wraps to 2", "█"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
