package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		content := `
always_notify = true
verbose = true
listen_tcp = true
tcp_addr = "127.0.0.1:5959"
default_sound = "done"
idle_threshold = "15m"
`
		path := createTempConfig(t, content)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !cfg.AlwaysNotify {
			t.Error("expected always_notify to be set")
		}
		if !cfg.Verbose {
			t.Error("expected verbose to be set")
		}
		if cfg.ListenTCP == nil || !*cfg.ListenTCP {
			t.Error("expected listen_tcp to be set")
		}
		if cfg.TCPAddr != "127.0.0.1:5959" {
			t.Errorf("unexpected tcp_addr %q", cfg.TCPAddr)
		}
		if cfg.DefaultSound != "done" {
			t.Errorf("unexpected default_sound %q", cfg.DefaultSound)
		}
		if cfg.IdleThreshold.Duration != 15*time.Minute {
			t.Errorf("unexpected idle_threshold %v", cfg.IdleThreshold.Duration)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		if err != nil {
			t.Fatalf("a missing config file should not be an error, got %v", err)
		}
		if cfg.AlwaysNotify || cfg.Verbose || cfg.ListenTCP != nil {
			t.Errorf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := createTempConfig(t, `always_notify = "not a bool`)
		if _, err := Load(path); err == nil {
			t.Error("expected an error for a malformed file")
		}
	})

	t.Run("malformed idle threshold", func(t *testing.T) {
		path := createTempConfig(t, `idle_threshold = "soon"`)
		if _, err := Load(path); err == nil {
			t.Error("expected an error for an unparseable duration")
		}
	})

	t.Run("listen_tcp defaults to unset", func(t *testing.T) {
		path := createTempConfig(t, `verbose = true`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.ListenTCP != nil {
			t.Error("expected listen_tcp to stay unset so the platform default applies")
		}
	})
}
