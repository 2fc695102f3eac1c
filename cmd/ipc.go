package cmd

import (
	"log/slog"
	"net"
	"time"

	"github.com/taheris/wrapix-notify/internal/xdgpath"
)

// clientSocketPath returns the well-known notification socket location.
// When the home directory cannot be resolved there is nothing to dial,
// which the client already treats as nobody listening.
func clientSocketPath() string {
	path, err := xdgpath.DataPath("notify.sock")
	if err != nil {
		slog.Debug("could not resolve socket path", "err", err)
		return ""
	}
	return path
}

// daemonReachable reports whether a daemon currently accepts
// connections on the notification socket.
func daemonReachable() bool {
	path, err := xdgpath.DataPath("notify.sock")
	if err != nil {
		return false
	}
	conn, err := net.DialTimeout("unix", path, time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
