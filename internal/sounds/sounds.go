// Package sounds maps symbolic sound names to platform identifiers so
// sandbox-side callers never need to know which host they end up on.
package sounds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table resolves symbolic sound aliases to platform identifiers.
type Table struct {
	aliases map[string]string
}

// macOS uses system sound names, Linux uses freedesktop sound theme
// ids carried in the notification sound-name hint.
var builtinAliases = map[string]map[string]string{
	"darwin": {
		"done":     "Glass",
		"alert":    "Basso",
		"error":    "Sosumi",
		"question": "Funk",
		"ping":     "Ping",
	},
	"linux": {
		"done":     "complete",
		"alert":    "dialog-warning",
		"error":    "dialog-error",
		"question": "dialog-question",
		"ping":     "message-new-instant",
	},
}

// Builtin returns the alias table shipped for the given GOOS. Unknown
// platforms get an empty table, so every name passes through untouched.
func Builtin(goos string) *Table {
	aliases := make(map[string]string, len(builtinAliases[goos]))
	for name, id := range builtinAliases[goos] {
		aliases[name] = id
	}
	return &Table{aliases: aliases}
}

// Load merges the user's sounds.yaml over the builtin aliases for the
// given GOOS. A missing file is not an error.
func Load(path, goos string) (*Table, error) {
	t := Builtin(goos)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var user map[string]string
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for name, id := range user {
		t.aliases[name] = id
	}
	return t, nil
}

// Resolve maps an alias to its platform identifier. Unknown names pass
// through unchanged so raw platform identifiers keep working.
func (t *Table) Resolve(name string) string {
	if id, ok := t.aliases[name]; ok {
		return id
	}
	return name
}
