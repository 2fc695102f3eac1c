package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/taheris/wrapix-notify/internal/config"
	"github.com/taheris/wrapix-notify/internal/ipc"
)

var sendCmd = &cobra.Command{
	Use:   "send [title] [message] [sound]",
	Short: "Send a desktop notification to the host.",
	Long: `Send a desktop notification to the host daemon. Delivery is
best-effort: when no daemon is reachable the command does nothing and
still exits 0, so it is always safe to call from scripts and hooks.

Set WRAPIX_NOTIFY_TCP to reach the daemon over TCP via the default
gateway instead of the notification socket. WRAPIX_SESSION_ID tags the
request with the terminal session it belongs to so the daemon can skip
notifications the user is already looking at.`,
	// Extra arguments are ignored rather than rejected: send always
	// exits 0, and a usage error would break that contract.
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(config.EnvBool("WRAPIX_NOTIFY_VERBOSE"))

		req := ipc.Request{SessionID: os.Getenv("WRAPIX_SESSION_ID")}
		if len(args) > 0 {
			req.Title = args[0]
		}
		if len(args) > 1 {
			req.Message = args[1]
		}
		if len(args) > 2 {
			req.Sound = args[2]
		}

		client := ipc.NewClient(clientSocketPath(), config.EnvBool("WRAPIX_NOTIFY_TCP"))
		client.Send(req)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
