//go:build darwin

package notifier

import (
	"context"
	"os/exec"
)

type osaScriptNotifier struct{}

func newPlatformNotifier() Notifier {
	return &osaScriptNotifier{}
}

func (o *osaScriptNotifier) Name() string { return "osascript" }

// Send displays the notification through Notification Center. The
// script is passed as a single -e argument, never through a shell.
func (o *osaScriptNotifier) Send(ctx context.Context, n Notification) error {
	return exec.CommandContext(ctx, "osascript", "-e", displayScript(n)).Run()
}
