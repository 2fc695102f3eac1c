package focus

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

// Idler reports how long the user has been away from keyboard and
// mouse. Like Query, implementations perform one live measurement per
// call and cache nothing.
type Idler interface {
	IdleTime(ctx context.Context) (time.Duration, error)
}

// HIDIdler reads HIDIdleTime from the macOS IOKit HID registry.
type HIDIdler struct {
	run runnerFunc
}

func (i *HIDIdler) IdleTime(ctx context.Context) (time.Duration, error) {
	out, err := i.run(ctx, "ioreg", "-c", "IOHIDSystem")
	if err != nil {
		return 0, err
	}
	return parseHIDIdleTime(out)
}

// parseHIDIdleTime extracts the idle duration from ioreg output. The
// relevant line reads `"HIDIdleTime" = <nanoseconds>`.
func parseHIDIdleTime(out []byte) (time.Duration, error) {
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		fields := strings.Fields(line)
		ns, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
		}
		return time.Duration(ns), nil
	}
	return 0, errors.New("no HIDIdleTime in ioreg output")
}

// DesktopIdler asks xprintidle for the X11 idle time, falling back to
// the GNOME Mutter idle monitor for Wayland sessions.
type DesktopIdler struct {
	run     runnerFunc
	busIdle func(ctx context.Context) (time.Duration, error)
}

func (i *DesktopIdler) IdleTime(ctx context.Context) (time.Duration, error) {
	out, err := i.run(ctx, "xprintidle")
	if err == nil {
		return parseIdleMillis(out)
	}
	return i.busIdle(ctx)
}

func parseIdleMillis(out []byte) (time.Duration, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// mutterIdleTime queries org.gnome.Mutter.IdleMonitor over the session
// bus. The shared connection must not be closed.
func mutterIdleTime(ctx context.Context) (time.Duration, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return 0, fmt.Errorf("session bus: %w", err)
	}
	obj := conn.Object("org.gnome.Mutter.IdleMonitor", "/org/gnome/Mutter/IdleMonitor/Core")
	var ms uint64
	if err := obj.CallWithContext(ctx, "org.gnome.Mutter.IdleMonitor.GetIdletime", 0).Store(&ms); err != nil {
		return 0, fmt.Errorf("idle monitor: %w", err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// zeroIdler always reports activity; the idle guard never fires on
// platforms without an idle source.
type zeroIdler struct{}

func (zeroIdler) IdleTime(ctx context.Context) (time.Duration, error) { return 0, nil }
