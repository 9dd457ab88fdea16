package sqlite

import (
	"errors"
	"os"
	"path/filepath"
)

func appDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "StopIt"), nil
}

// DefaultPath is where the leaderboard database lives when saving
// is requested without an explicit path.
func DefaultPath() (string, error) {
	dir, err := appDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "leaderboard.db"), nil
}
