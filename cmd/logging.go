package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging configures the default logger. WRAPIX_LOG_LEVEL picks
// the base level; the verbose toggle forces debug.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if levelStr := os.Getenv("WRAPIX_LOG_LEVEL"); levelStr != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(levelStr)); err == nil {
			logLevel = l
		}
	}
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		}),
	))
}
