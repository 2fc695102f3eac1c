package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wrapix-notify",
	Short: "Relay desktop notifications from the wrapix sandbox to the host.",
	Long: `wrapix-notify carries desktop notifications across the sandbox boundary.

Inside the sandbox, 'wrapix-notify send' fires a best-effort request over
the shared notification socket, or over TCP to the host gateway on
platforms without socket passthrough. On the host, 'wrapix-notify daemon
run' listens for those requests and raises them natively, skipping the
ones whose terminal session is already on screen.`,
}

// Root returns the command tree for the fang runner in main.
func Root() *cobra.Command {
	return rootCmd
}
