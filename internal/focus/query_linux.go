//go:build linux

package focus

// NewQuery returns the window-id comparison used on Linux desktops.
func NewQuery() Query {
	return &WindowIDQuery{run: runCommand}
}
