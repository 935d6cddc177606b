// Package settings finds the data directory and persists player preferences.
package settings

import (
	"os"
	"path/filepath"
)

// AppName names the data directory.
const AppName = "mengya"

// DataDir returns the directory holding preferences and logs.
// Follows the XDG base directory layout: $XDG_DATA_HOME/mengya,
// defaulting to ~/.local/share/mengya.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}
