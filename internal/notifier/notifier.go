// Package notifier raises native desktop notifications on the host.
package notifier

import "context"

// Notification is one notification ready for display. Sound is a
// platform identifier, already resolved from any symbolic alias.
type Notification struct {
	Title   string
	Message string
	Sound   string
}

// Notifier delivers notifications to the host desktop. Send failures
// are reported to the caller; they are never fatal to the daemon.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
	Name() string
}

// New returns the notifier for the current platform.
func New() Notifier {
	return newPlatformNotifier()
}
