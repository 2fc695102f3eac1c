package ipc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
)

// maxLineBytes caps a single wire record. Anything longer fails the
// scanner and ends that connection without touching the others.
const maxLineBytes = 1 << 20

// Handler processes one decoded notification record.
type Handler func(req Request)

// Server accepts notification connections and feeds each
// newline-delimited record on them to a handler. Every connection runs
// in its own goroutine; a slow or malformed sender cannot affect the
// listeners or other senders.
type Server struct {
	socketPath string
	listeners  []net.Listener
}

// NewServer binds the domain-socket listener, removing any stale
// socket file a crashed instance may have left behind.
func NewServer(socketPath string) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", socketPath, err)
	}

	return &Server{
		socketPath: socketPath,
		listeners:  []net.Listener{listener},
	}, nil
}

// AddTCP binds an additional TCP listener. The address should stay on
// the host-side loopback; the daemon is not meant to be reachable
// beyond the sandbox's private network.
func (s *Server) AddTCP(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	s.listeners = append(s.listeners, listener)
	return nil
}

// Serve accepts connections on every listener until Close is called.
func (s *Server) Serve(handler Handler) {
	var wg sync.WaitGroup
	for _, l := range s.listeners {
		wg.Add(1)
		go func(l net.Listener) {
			defer wg.Done()
			s.acceptLoop(l, handler)
		}(l)
	}
	wg.Wait()
}

func (s *Server) acceptLoop(l net.Listener, handler Handler) {
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			slog.Warn("accept failed", "addr", l.Addr(), "err", err)
			continue
		}
		go s.handleConnection(conn, handler)
	}
}

func (s *Server) handleConnection(conn net.Conn, handler Handler) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		req, err := DecodeLine(line)
		if err != nil {
			slog.Debug("dropping malformed record", "err", err)
			continue
		}
		handler(req)
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("connection read failed", "err", err)
	}
}

// SocketPath returns the domain-socket location the server is bound to.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Addrs returns the bound listener addresses.
func (s *Server) Addrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(s.listeners))
	for _, l := range s.listeners {
		addrs = append(addrs, l.Addr())
	}
	return addrs
}

// Close shuts down every listener and removes the socket file. Safe to
// call from a signal path while Serve is still running.
func (s *Server) Close() error {
	var errs []error
	for _, l := range s.listeners {
		if err := l.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
