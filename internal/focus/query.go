package focus

import (
	"context"
	"os/exec"
	"strings"
)

// Query is one live look at the windowing system. Implementations pick
// the record field they compare and report what currently has focus.
type Query interface {
	// SessionTarget extracts the focus-identifying field this query
	// compares against. Empty means the record cannot be matched.
	SessionTarget(rec SessionRecord) string
	// FocusedTarget asks the windowing system what has focus right now.
	FocusedTarget(ctx context.Context) (string, error)
}

type runnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// WindowIDQuery compares the session's X11 window id against the
// currently active window reported by xdotool.
type WindowIDQuery struct {
	run runnerFunc
}

func (q *WindowIDQuery) SessionTarget(rec SessionRecord) string {
	return rec.WindowID
}

func (q *WindowIDQuery) FocusedTarget(ctx context.Context) (string, error) {
	out, err := q.run(ctx, "xdotool", "getactivewindow")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// AppNameQuery compares the session's terminal application name against
// the frontmost application reported by System Events.
type AppNameQuery struct {
	run runnerFunc
}

func (q *AppNameQuery) SessionTarget(rec SessionRecord) string {
	return rec.TerminalApp
}

func (q *AppNameQuery) FocusedTarget(ctx context.Context) (string, error) {
	out, err := q.run(ctx, "osascript",
		"-e", `tell application "System Events" to get name of first application process whose frontmost is true`)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// noopQuery never matches anything; platforms without a focus source
// simply show every notification.
type noopQuery struct{}

func (noopQuery) SessionTarget(rec SessionRecord) string { return "" }

func (noopQuery) FocusedTarget(ctx context.Context) (string, error) { return "", nil }
