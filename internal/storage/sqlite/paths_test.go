package sqlite

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultPathUsesConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	want := filepath.Join(dir, "StopIt", "leaderboard.db")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
