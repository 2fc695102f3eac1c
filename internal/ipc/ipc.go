package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
)

// Port is the fixed TCP port the daemon listens on for sandboxes whose
// container layer cannot pass domain-socket operations through the
// shared filesystem.
const Port = 5959

// DefaultTCPAddr is the daemon-side TCP endpoint. Loopback only: under
// the microVM's transparent socket networking a guest connect to the
// gateway terminates on the host loopback, so nothing wider is needed.
var DefaultTCPAddr = net.JoinHostPort("127.0.0.1", strconv.Itoa(Port))

// DefaultTitle is used when a request carries no title.
const DefaultTitle = "Claude Code"

// Request is one notification sent from the sandbox to the daemon. All
// fields are optional on the wire; an empty object is a valid request.
type Request struct {
	Title     string `json:"title,omitempty"`
	Message   string `json:"message,omitempty"`
	Sound     string `json:"sound,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// ApplyDefaults fills the fields the wire format leaves optional.
func (r *Request) ApplyDefaults() {
	if r.Title == "" {
		r.Title = DefaultTitle
	}
}

// EncodeLine serializes a request to a single newline-terminated wire
// record. Titles containing quotes, backslashes, or newlines survive
// the trip because the payload is real JSON, not spliced text.
func EncodeLine(req Request) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeLine parses one wire record.
func DecodeLine(line []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Request{}, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}
