// Package focus decides whether the terminal session a notification
// belongs to is already on screen. Every failure mode resolves to "not
// focused" so a notification is shown rather than silently lost.
package focus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// SessionRecord binds a session identifier to the terminal surface the
// user launched it from. Records are produced by the session tracker;
// this package only ever reads them.
type SessionRecord struct {
	SessionID   string
	TerminalApp string
	WindowID    string
}

// Registry looks up the record for a session.
type Registry interface {
	Lookup(sessionID string) (SessionRecord, bool)
}

// Key converts a session identifier to the filesystem-safe form used
// to name record files. Separator runes such as ':' and '.' become '_'.
func Key(sessionID string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, sessionID)
}

// DirRegistry reads one JSON record file per session from a directory.
// The tracker may be mid-write when a lookup lands, so anything that
// does not parse as a complete object counts as no record.
type DirRegistry struct {
	Dir string
}

func (d DirRegistry) Lookup(sessionID string) (SessionRecord, bool) {
	data, err := os.ReadFile(filepath.Join(d.Dir, Key(sessionID)+".json"))
	if err != nil {
		return SessionRecord{}, false
	}
	if !gjson.ValidBytes(data) {
		return SessionRecord{}, false
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return SessionRecord{}, false
	}
	return SessionRecord{
		SessionID:   parsed.Get("session_id").String(),
		TerminalApp: parsed.Get("terminal_app").String(),
		WindowID:    parsed.Get("window_id").String(),
	}, true
}
