package xdgpath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := DataPath("notify.sock")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := filepath.Join(dir, "wrapix", "notify.sock")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	info, err := os.Stat(filepath.Join(dir, "wrapix"))
	if err != nil {
		t.Fatalf("expected wrapix dir to be created: %v", err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("expected mode 0700, got %v", info.Mode().Perm())
	}
}

func TestDataPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)

	path, err := DataPath("sessions")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := filepath.Join(home, ".local", "share", "wrapix", "sessions")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath("config.toml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := filepath.Join(dir, "wrapix", "config.toml")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}
