//go:build !linux && !darwin

package notifier

import (
	"context"

	"github.com/gen2brain/beeep"
)

type beeepNotifier struct{}

func newPlatformNotifier() Notifier {
	return &beeepNotifier{}
}

func (b *beeepNotifier) Name() string { return "beeep" }

// Send uses the cross-platform beeep backend. Sounds are not supported
// here; the sound identifier is ignored.
func (b *beeepNotifier) Send(ctx context.Context, n Notification) error {
	return beeep.Notify(n.Title, n.Message, "")
}
