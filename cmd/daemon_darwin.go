//go:build darwin

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taheris/wrapix-notify/internal/fileutil"
)

const (
	daemonServiceName = "com.user.wrapix-notify.plist"
	launchdDir        = "Library/LaunchAgents"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the daemon as a launchd agent.",
	Long:  `Install the daemon as a launchd agent and start it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		executable, err := os.Executable()
		if err != nil {
			return err
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		plist := renderPlist(executable, homeDir)
		if print, _ := cmd.Flags().GetBool("print"); print {
			fmt.Fprint(os.Stdout, plist)
			fmt.Fprintln(os.Stderr, "WARNING: Service configuration printed but not installed.")
			return nil
		}

		plistPath := filepath.Join(homeDir, launchdDir, daemonServiceName)
		if err := fileutil.WriteFileAtomic(plistPath, []byte(plist), 0644); err != nil {
			return err
		}

		if err := exec.Command("launchctl", "load", plistPath).Run(); err != nil {
			return fmt.Errorf("failed to load launchd service: %w", err)
		}

		fmt.Printf("Successfully installed wrapix-notify daemon service. Configuration file created at: %s\n", plistPath)
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall the daemon service.",
	Long:  `Stop the daemon service and remove its launchd agent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plistPath, err := agentPath()
		if err != nil {
			return err
		}

		// Ignore errors, the service may not be loaded.
		_ = exec.Command("launchctl", "unload", plistPath).Run()

		if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
			return err
		}

		fmt.Println("Successfully uninstalled wrapix-notify daemon service.")
		return nil
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Restart the daemon service.",
	Long:  `Unload and reload the launchd agent, restarting the daemon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plistPath, err := agentPath()
		if err != nil {
			return err
		}

		if err := exec.Command("launchctl", "unload", plistPath).Run(); err != nil {
			return fmt.Errorf("failed to unload launchd service: %w", err)
		}
		if err := exec.Command("launchctl", "load", plistPath).Run(); err != nil {
			return fmt.Errorf("failed to load launchd service: %w", err)
		}

		fmt.Println("Successfully reloaded wrapix-notify daemon service.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the daemon.",
	Long:  `Checks whether the daemon service is installed and whether the notification socket is accepting connections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plistPath, err := agentPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(plistPath); os.IsNotExist(err) {
			fmt.Println("Daemon service is not installed.")
		} else {
			fmt.Println("Daemon service is installed.")
			fmt.Printf("Configuration file: %s\n", plistPath)
		}

		if daemonReachable() {
			fmt.Println("Daemon is accepting connections.")
		} else {
			fmt.Println("Daemon is not reachable on the notification socket.")
		}
		return nil
	},
}

func agentPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, launchdDir, daemonServiceName), nil
}

func renderPlist(executable, homeDir string) string {
	return fmt.Sprintf(daemonPlistTemplate, executable, homeDir, homeDir)
}

const daemonPlistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>com.user.wrapix-notify</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>
        <string>daemon</string>
        <string>run</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
    <key>StandardOutPath</key>
    <string>%s/Library/Logs/wrapix-notify.log</string>
    <key>StandardErrorPath</key>
    <string>%s/Library/Logs/wrapix-notify.error.log</string>
</dict>
</plist>
`

func init() {
	installCmd.Flags().Bool("print", false, "Print the service configuration to stdout instead of installing it.")
	daemonCmd.AddCommand(installCmd)
	daemonCmd.AddCommand(uninstallCmd)
	daemonCmd.AddCommand(reloadCmd)
	daemonCmd.AddCommand(statusCmd)
}
