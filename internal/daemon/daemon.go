package daemon

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/taheris/wrapix-notify/internal/config"
	"github.com/taheris/wrapix-notify/internal/ipc"
	"github.com/taheris/wrapix-notify/internal/notifier"
	"github.com/taheris/wrapix-notify/internal/sounds"
)

// Dispatch and focus-query bounds. A hung platform command must not
// wedge the connection it arrived on, and never the accept loop.
const (
	dispatchTimeout = 10 * time.Second
	focusTimeout    = 3 * time.Second
)

// FocusResolver decides whether the terminal session that produced a
// request is already on screen.
type FocusResolver interface {
	IsFocused(ctx context.Context, sessionID string) bool
}

// IdleSampler reports how long the user has been away from the
// keyboard.
type IdleSampler interface {
	IdleTime(ctx context.Context) (time.Duration, error)
}

// Daemon relays notification records from the sandbox to the host
// desktop, suppressing the ones the user is already looking at.
type Daemon struct {
	server        *ipc.Server
	resolver      FocusResolver
	idler         IdleSampler
	notifier      notifier.Notifier
	sounds        *sounds.Table
	alwaysNotify  bool
	defaultSound  string
	idleThreshold time.Duration
}

// NewDaemon wires a daemon from its collaborators. A nil config means
// all defaults; a nil sound table means the builtin aliases.
func NewDaemon(server *ipc.Server, resolver FocusResolver, idler IdleSampler, n notifier.Notifier, table *sounds.Table, cfg *config.Config) *Daemon {
	if table == nil {
		table = sounds.Builtin(runtime.GOOS)
	}
	d := &Daemon{
		server:   server,
		resolver: resolver,
		idler:    idler,
		notifier: n,
		sounds:   table,
	}
	if cfg != nil {
		d.alwaysNotify = cfg.AlwaysNotify
		d.defaultSound = cfg.DefaultSound
		d.idleThreshold = cfg.IdleThreshold.Duration
	}
	return d
}

// Run serves until ctx is cancelled. The socket file is removed on
// every exit path, including signal-driven termination; in-flight
// connections are abandoned, which best-effort delivery permits.
func (d *Daemon) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.server.Serve(d.handle)
	}()

	<-ctx.Done()
	slog.Info("Received shutdown signal, closing listeners")
	err := d.server.Close()
	<-done
	slog.Info("Shutdown complete")
	return err
}

// handle processes one decoded record. It runs on the connection's
// goroutine, so one sender's slow dispatch never delays another's.
func (d *Daemon) handle(req ipc.Request) {
	req.ApplyDefaults()

	if d.suppress(req) {
		slog.Debug("Notification suppressed", "session_id", req.SessionID, "title", req.Title)
		return
	}

	sound := req.Sound
	if sound == "" {
		sound = d.defaultSound
	}

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	n := notifier.Notification{
		Title:   req.Title,
		Message: req.Message,
		Sound:   d.sounds.Resolve(sound),
	}
	if err := d.notifier.Send(ctx, n); err != nil {
		slog.Warn("Notification dispatch failed", "notifier", d.notifier.Name(), "err", err)
		return
	}
	slog.Debug("Notification dispatched", "title", n.Title, "notifier", d.notifier.Name())
}

func (d *Daemon) suppress(req ipc.Request) bool {
	if d.alwaysNotify || req.SessionID == "" || d.resolver == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), focusTimeout)
	defer cancel()
	if d.userAway(ctx) {
		return false
	}
	return d.resolver.IsFocused(ctx, req.SessionID)
}

// userAway reports whether the user has been idle past the configured
// threshold. A focused terminal is stale evidence when nobody is at
// the keyboard, so suppression is skipped and the notification shows.
// An unreadable idle time counts as active.
func (d *Daemon) userAway(ctx context.Context) bool {
	if d.idleThreshold <= 0 || d.idler == nil {
		return false
	}
	idle, err := d.idler.IdleTime(ctx)
	if err != nil {
		slog.Debug("Idle query failed", "err", err)
		return false
	}
	return idle >= d.idleThreshold
}
