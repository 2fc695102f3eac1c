//go:build darwin

package focus

// NewQuery returns the frontmost-application comparison used on macOS.
func NewQuery() Query {
	return &AppNameQuery{run: runCommand}
}
