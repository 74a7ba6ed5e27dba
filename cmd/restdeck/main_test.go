package main

import "testing"

// TestCommandsRegistered verifies every subcommand is wired to the root.
func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"check":  false,
		"fmt":    false,
		"watch":  false,
		"info":   false,
		"reveal": false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

// TestHumanSize covers the unit boundaries.
func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := humanSize(tt.size); got != tt.want {
			t.Errorf("humanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
