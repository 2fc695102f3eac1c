//go:build darwin

package cmd

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

const testNotificationScript = `display notification "Notifications are now enabled for wrapix-notify!" with title "Claude Code"`

var enableNotificationsCmd = &cobra.Command{
	Use:   "enable-notifications",
	Short: "Guides you to enable notifications on macOS.",
	Long: `Opens Script Editor with a pre-filled script to enable notifications.

macOS only shows notifications from processes the user has approved. You
must run this script once and grant permissions, or every notification
the daemon dispatches through osascript will be silently discarded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Opening Script Editor...")
		fmt.Println("Please click the 'Run' button (the triangle) in Script Editor.")
		fmt.Println("Then, click 'Allow' when prompted for notification permissions.")

		// Use osascript to open Script Editor with the content, as it's more direct
		// than creating a temporary file. The inner script becomes an AppleScript
		// string literal, so its own quotes have to be escaped.
		escaped := strings.ReplaceAll(testNotificationScript, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		command := fmt.Sprintf("tell application \"Script Editor\" to make new document with properties {contents:\"%s\"}\nactivate", escaped)
		return exec.Command("osascript", "-e", command).Run()
	},
}

func init() {
	rootCmd.AddCommand(enableNotificationsCmd)
}
