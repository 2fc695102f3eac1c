package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/taheris/wrapix-notify/internal/config"
	"github.com/taheris/wrapix-notify/internal/daemon"
	"github.com/taheris/wrapix-notify/internal/focus"
	"github.com/taheris/wrapix-notify/internal/ipc"
	"github.com/taheris/wrapix-notify/internal/notifier"
	"github.com/taheris/wrapix-notify/internal/sounds"
	"github.com/taheris/wrapix-notify/internal/xdgpath"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the wrapix-notify daemon.",
	Long:  `Manage the wrapix-notify daemon.`,
}

var daemonRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the notification daemon.",
	Long: `Run the notification daemon in the foreground. The daemon listens on
the notification socket (and on TCP port 5959 on macOS hosts), reads
newline-delimited notification records, and raises each one on the
desktop unless the terminal session that produced it already has focus.
It runs until interrupted and removes its socket file on the way out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon()
	},
}

func runDaemon() error {
	cfg, err := loadDaemonConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg.Verbose)
	slog.Info("Starting daemon...")

	socketPath := cfg.SocketPath
	if socketPath == "" {
		socketPath, err = xdgpath.DataPath("notify.sock")
		if err != nil {
			return fmt.Errorf("failed to resolve socket path: %w", err)
		}
	}
	sessionDir := cfg.SessionDir
	if sessionDir == "" {
		sessionDir, err = xdgpath.DataPath("sessions")
		if err != nil {
			return fmt.Errorf("failed to resolve session directory: %w", err)
		}
	}

	server, err := ipc.NewServer(socketPath)
	if err != nil {
		return fmt.Errorf("failed to bind notification socket: %w", err)
	}
	defer server.Close()
	if wantTCP(cfg) {
		addr := cfg.TCPAddr
		if addr == "" {
			addr = ipc.DefaultTCPAddr
		}
		if err := server.AddTCP(addr); err != nil {
			return fmt.Errorf("failed to bind tcp listener: %w", err)
		}
	}

	resolver := &focus.Resolver{
		Registry: focus.DirRegistry{Dir: sessionDir},
		Query:    focus.NewQuery(),
	}
	n := notifier.New()

	d := daemon.NewDaemon(server, resolver, focus.NewIdler(), n, loadSoundTable(), cfg)
	slog.Info("Daemon startup successful.",
		"socket", server.SocketPath(),
		"notifier", n.Name(),
		"sessions", sessionDir,
		"always_notify", cfg.AlwaysNotify,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return d.Run(ctx)
}

func loadDaemonConfig() (*config.Config, error) {
	path, err := xdgpath.ConfigPath("config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// wantTCP decides whether the TCP listener is bound. The config wins
// when set; otherwise only macOS hosts get one, since that is where
// the container layer cannot pass domain sockets through.
func wantTCP(cfg *config.Config) bool {
	if cfg.ListenTCP != nil {
		return *cfg.ListenTCP
	}
	return runtime.GOOS == "darwin"
}

func loadSoundTable() *sounds.Table {
	path, err := xdgpath.ConfigPath("sounds.yaml")
	if err != nil {
		slog.Warn("Could not resolve sound aliases path, using builtins", "err", err)
		return sounds.Builtin(runtime.GOOS)
	}
	table, err := sounds.Load(path, runtime.GOOS)
	if err != nil {
		slog.Warn("Ignoring sound aliases", "path", path, "err", err)
		return sounds.Builtin(runtime.GOOS)
	}
	return table
}

func init() {
	daemonCmd.AddCommand(daemonRunCmd)
	rootCmd.AddCommand(daemonCmd)
}
