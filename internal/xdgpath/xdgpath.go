package xdgpath

import (
	"fmt"
	"os"
	"path/filepath"
)

func getDataHome() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

func getConfigHome() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return configHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// DataPath returns the path for a data file, creating the directory if needed.
// The data directory is used for the notification socket and the session
// records because it is the one tree shared with the sandbox's home mount.
func DataPath(elem ...string) (string, error) {
	base, err := getDataHome()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "wrapix")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}

// ConfigPath returns the path for a config file, creating the directory if needed.
func ConfigPath(elem ...string) (string, error) {
	base, err := getConfigHome()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "wrapix")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, elem...)...), nil
}
