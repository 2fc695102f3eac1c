package ipc

import (
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/jackpal/gateway"
)

// Connect and write bounds for one send. A wedged daemon must never
// stall the calling process.
const (
	DialTimeout  = 2 * time.Second
	WriteTimeout = 2 * time.Second
)

// Client sends fire-and-forget notification records to the daemon.
type Client struct {
	socketPath string
	useTCP     bool

	dial      func(network, addr string, timeout time.Duration) (net.Conn, error)
	gatewayIP func() (net.IP, error)
}

// NewClient creates a client. With useTCP set, the target host is the
// default-route gateway read from the routing table at send time;
// otherwise the fixed domain socket at socketPath is used.
func NewClient(socketPath string, useTCP bool) *Client {
	return &Client{
		socketPath: socketPath,
		useTCP:     useTCP,
		dial:       net.DialTimeout,
		gatewayIP:  gateway.DiscoverGateway,
	}
}

// Send delivers one request on a best-effort basis. It never reports
// failure: an absent daemon, an unresolvable gateway, or any I/O error
// is logged at debug level and otherwise swallowed, so the calling
// workflow is never disturbed by its own notification.
func (c *Client) Send(req Request) {
	network, addr, ok := c.resolveTarget()
	if !ok {
		return
	}

	line, err := EncodeLine(req)
	if err != nil {
		slog.Debug("could not encode notification", "err", err)
		return
	}

	conn, err := c.dial(network, addr, DialTimeout)
	if err != nil {
		slog.Debug("notification daemon unreachable", "network", network, "addr", addr, "err", err)
		return
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	if _, err := conn.Write(line); err != nil {
		slog.Debug("could not write notification", "addr", addr, "err", err)
		return
	}
	slog.Debug("notification sent", "network", network, "addr", addr)
}

// resolveTarget picks the transport. A missing socket or unresolvable
// gateway means there is nobody to notify, and the send is skipped.
func (c *Client) resolveTarget() (network, addr string, ok bool) {
	if c.useTCP {
		ip, err := c.gatewayIP()
		if err != nil {
			slog.Debug("could not resolve gateway address", "err", err)
			return "", "", false
		}
		return "tcp", net.JoinHostPort(ip.String(), strconv.Itoa(Port)), true
	}

	info, err := os.Stat(c.socketPath)
	if err != nil || info.Mode()&os.ModeSocket == 0 {
		slog.Debug("notification socket not present", "path", c.socketPath)
		return "", "", false
	}
	return "unix", c.socketPath, true
}
