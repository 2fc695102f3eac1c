//go:build linux

package notifier

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

const displayTimeout = 10 * time.Second

// dbusNotifier talks to org.freedesktop.Notifications on the session
// bus, falling back to the notify-send binary when no bus is reachable
// (e.g. a headless host still running a notification bridge).
type dbusNotifier struct {
	mu   sync.Mutex
	conn *dbus.Conn
}

func newPlatformNotifier() Notifier {
	return &dbusNotifier{}
}

func (d *dbusNotifier) Name() string { return "dbus" }

func (d *dbusNotifier) Send(ctx context.Context, n Notification) error {
	busErr := d.sendBus(n)
	if busErr == nil {
		return nil
	}
	if fallbackErr := sendNotifySend(ctx, n); fallbackErr != nil {
		return errors.Join(busErr, fallbackErr)
	}
	return nil
}

func (d *dbusNotifier) sendBus(n Notification) error {
	conn, err := d.bus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}

	note := notify.Notification{
		AppName:       "wrapix",
		Summary:       n.Title,
		Body:          n.Message,
		ExpireTimeout: displayTimeout,
	}
	if n.Sound != "" {
		note.Hints = map[string]dbus.Variant{
			"sound-name": dbus.MakeVariant(n.Sound),
		}
	}

	if _, err := notify.SendNotification(conn, note); err != nil {
		return fmt.Errorf("dbus notify: %w", err)
	}
	return nil
}

// bus returns the shared session bus connection, re-establishing it if
// a previous one died. The shared connection must not be closed.
func (d *dbusNotifier) bus() (*dbus.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn != nil && d.conn.Connected() {
		return d.conn, nil
	}
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	d.conn = conn
	return conn, nil
}

func sendNotifySend(ctx context.Context, n Notification) error {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return fmt.Errorf("notify-send not installed: %w", err)
	}
	return exec.CommandContext(ctx, path, notifySendArgs(n)...).Run()
}

func notifySendArgs(n Notification) []string {
	args := []string{"--app-name=wrapix"}
	if n.Sound != "" {
		args = append(args, "--hint=string:sound-name:"+n.Sound)
	}
	return append(args, "--", n.Title, n.Message)
}
