package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration decodes TOML strings like "15m" or "1h30m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	d.Duration = v
	return err
}

// Config holds the daemon settings read from config.toml. Zero values
// defer to built-in defaults; environment toggles override the file.
type Config struct {
	// AlwaysNotify disables focus suppression unconditionally.
	AlwaysNotify bool `toml:"always_notify"`
	// Verbose raises logging to debug level.
	Verbose bool `toml:"verbose"`
	// ListenTCP forces the TCP listener on or off. Unset means the
	// platform default: on for macOS hosts, off elsewhere.
	ListenTCP *bool `toml:"listen_tcp"`
	// TCPAddr overrides the TCP listen address.
	TCPAddr string `toml:"tcp_addr"`
	// SocketPath overrides the domain-socket location.
	SocketPath string `toml:"socket_path"`
	// SessionDir overrides the session record directory.
	SessionDir string `toml:"session_dir"`
	// DefaultSound plays for requests that name no sound.
	DefaultSound string `toml:"default_sound"`
	// IdleThreshold disables focus suppression once the user has been
	// away from the keyboard this long; a focused terminal nobody is
	// sitting at should still get its notifications. Zero leaves the
	// guard off.
	IdleThreshold Duration `toml:"idle_threshold"`
}

// Load reads the daemon config file. A missing file yields the zero
// config; a file that exists but does not parse is an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv lets environment toggles override file values. Toggles can
// only switch behavior on; the file remains the way to turn it off.
func (c *Config) ApplyEnv() {
	if EnvBool("WRAPIX_NOTIFY_ALWAYS") {
		c.AlwaysNotify = true
	}
	if EnvBool("WRAPIX_NOTIFY_VERBOSE") {
		c.Verbose = true
	}
}

// EnvBool reports whether an environment toggle is set. Any value
// other than empty, "0", or "false" counts as on.
func EnvBool(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0" && v != "false"
}
