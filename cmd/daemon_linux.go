//go:build linux

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taheris/wrapix-notify/internal/fileutil"
)

const daemonServiceName = "wrapix-notify.service"

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the daemon as a systemd user service.",
	Long:  `Install the daemon as a systemd user service and start it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		executable, err := os.Executable()
		if err != nil {
			return err
		}

		service := renderService(executable)
		if print, _ := cmd.Flags().GetBool("print"); print {
			fmt.Fprint(os.Stdout, service)
			fmt.Fprintln(os.Stderr, "WARNING: Service configuration printed but not installed.")
			return nil
		}

		servicePath, err := userServicePath()
		if err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(servicePath, []byte(service), 0644); err != nil {
			return err
		}

		if err := exec.Command("systemctl", "--user", "enable", "--now", daemonServiceName).Run(); err != nil {
			return err
		}

		fmt.Printf("Successfully installed wrapix-notify daemon service. Configuration file created at: %s\n", servicePath)
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall the daemon service.",
	Long:  `Stop the daemon service and remove its systemd unit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		servicePath, err := userServicePath()
		if err != nil {
			return err
		}

		// Ignore errors, the service may not be running.
		_ = exec.Command("systemctl", "--user", "disable", "--now", daemonServiceName).Run()

		if err := os.Remove(servicePath); err != nil && !os.IsNotExist(err) {
			return err
		}

		fmt.Println("Successfully uninstalled wrapix-notify daemon service.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the status of the daemon.",
	Long:  `Checks whether the daemon service is installed and whether the notification socket is accepting connections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		servicePath, err := userServicePath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(servicePath); os.IsNotExist(err) {
			fmt.Println("Daemon service is not installed.")
		} else {
			fmt.Println("Daemon service is installed.")
			fmt.Printf("Configuration file: %s\n", servicePath)
		}

		if daemonReachable() {
			fmt.Println("Daemon is accepting connections.")
		} else {
			fmt.Println("Daemon is not reachable on the notification socket.")
		}
		return nil
	},
}

func userServicePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "systemd", "user", daemonServiceName), nil
}

func renderService(executable string) string {
	return fmt.Sprintf(daemonServiceTemplate, executable)
}

const daemonServiceTemplate = `[Unit]
Description=wrapix notification daemon

[Service]
ExecStart=%s daemon run
Restart=always

[Install]
WantedBy=default.target
`

func init() {
	installCmd.Flags().Bool("print", false, "Print the service configuration to stdout instead of installing it.")
	daemonCmd.AddCommand(installCmd)
	daemonCmd.AddCommand(uninstallCmd)
	daemonCmd.AddCommand(statusCmd)
}
