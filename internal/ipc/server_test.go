package ipc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func collectRequests(t *testing.T, ch <-chan Request, want int) []Request {
	t.Helper()
	var got []Request
	timeout := time.After(2 * time.Second)
	for len(got) < want {
		select {
		case req := <-ch:
			got = append(got, req)
		case <-timeout:
			t.Fatalf("received %d of %d expected records", len(got), want)
		}
	}
	return got
}

func TestServerConcurrentConnections(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "notify.sock")
	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	defer server.Close()

	requests := make(chan Request, 16)
	go server.Serve(func(req Request) { requests <- req })

	var wg sync.WaitGroup
	send := func(lines ...string) {
		defer wg.Done()
		conn, err := net.Dial("unix", socketPath)
		if err != nil {
			t.Errorf("dial failed: %v", err)
			return
		}
		defer conn.Close()
		for _, line := range lines {
			if _, err := fmt.Fprintf(conn, "%s\n", line); err != nil {
				t.Errorf("write failed: %v", err)
				return
			}
		}
	}

	wg.Add(2)
	go send(
		`{"title":"A1","session_id":"a"}`,
		`this is not json`,
		`{"title":"A2","session_id":"a"}`,
	)
	go send(
		`{"title":"B1","session_id":"b"}`,
		``,
		`{"title":"B2","session_id":"b"}`,
	)
	wg.Wait()

	got := collectRequests(t, requests, 4)
	titles := make(map[string]bool)
	for _, req := range got {
		titles[req.Title] = true
	}
	for _, want := range []string{"A1", "A2", "B1", "B2"} {
		if !titles[want] {
			t.Errorf("record %q was lost", want)
		}
	}

	select {
	case req := <-requests:
		t.Errorf("unexpected extra record: %+v", req)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestServerMalformedRecordKeepsConnection(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "notify.sock")
	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	defer server.Close()

	requests := make(chan Request, 4)
	go server.Serve(func(req Request) { requests <- req })

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	fmt.Fprintln(conn, `{"title":"before"}`)
	fmt.Fprintln(conn, `{{{{`)
	fmt.Fprintln(conn, `{"title":"after"}`)

	got := collectRequests(t, requests, 2)
	if got[0].Title != "before" || got[1].Title != "after" {
		t.Errorf("expected records on the same connection in order, got %+v", got)
	}
}

func TestServerRemovesStaleSocket(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "notify.sock")

	t.Run("regular file", func(t *testing.T) {
		if err := os.WriteFile(socketPath, []byte("stale"), 0600); err != nil {
			t.Fatal(err)
		}
		server, err := NewServer(socketPath)
		if err != nil {
			t.Fatalf("expected rebind over a regular file, got %v", err)
		}
		server.Close()
	})

	t.Run("abandoned socket", func(t *testing.T) {
		stale, err := net.Listen("unix", socketPath)
		if err != nil {
			t.Fatalf("failed to create stale listener: %v", err)
		}
		// Simulates a crashed instance: the file is still present and
		// the old listener was never shut down cleanly.
		server, err := NewServer(socketPath)
		if err != nil {
			t.Fatalf("expected rebind over a stale socket, got %v", err)
		}

		requests := make(chan Request, 1)
		go server.Serve(func(req Request) { requests <- req })

		conn, err := net.Dial("unix", socketPath)
		if err != nil {
			t.Fatalf("dial after rebind failed: %v", err)
		}
		fmt.Fprintln(conn, `{"title":"rebound"}`)
		conn.Close()

		got := collectRequests(t, requests, 1)
		if got[0].Title != "rebound" {
			t.Errorf("expected record on rebound socket, got %+v", got[0])
		}

		server.Close()
		stale.Close()
	})
}

func TestServerCreatesSocketDirectory(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "wrapix", "notify.sock")
	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("expected bind in a fresh directory, got %v", err)
	}
	defer server.Close()

	if _, err := net.Dial("unix", socketPath); err != nil {
		t.Errorf("dial failed: %v", err)
	}
}

func TestServerCloseRemovesSocketFile(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "notify.sock")
	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}

	if err := server.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, err := os.Stat(socketPath); !os.IsNotExist(err) {
		t.Errorf("socket file still present after close: %v", err)
	}
}

func TestServerTCPListener(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "notify.sock")
	server, err := NewServer(socketPath)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	defer server.Close()

	if err := server.AddTCP("127.0.0.1:0"); err != nil {
		t.Fatalf("failed to add tcp listener: %v", err)
	}
	addrs := server.Addrs()
	if len(addrs) != 2 {
		t.Fatalf("expected 2 listeners, got %d", len(addrs))
	}

	requests := make(chan Request, 1)
	go server.Serve(func(req Request) { requests <- req })

	conn, err := net.Dial("tcp", addrs[1].String())
	if err != nil {
		t.Fatalf("tcp dial failed: %v", err)
	}
	fmt.Fprintln(conn, `{"title":"over tcp","message":"hi"}`)
	conn.Close()

	got := collectRequests(t, requests, 1)
	if got[0].Title != "over tcp" || got[0].Message != "hi" {
		t.Errorf("unexpected record: %+v", got[0])
	}
}
