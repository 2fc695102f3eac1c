package notifier

import (
	"fmt"
	"strings"
)

// displayScript builds the AppleScript for one notification. User text
// is escaped so quotes and backslashes cannot break out of the string
// literals.
func displayScript(n Notification) string {
	script := fmt.Sprintf("display notification \"%s\" with title \"%s\"",
		escapeAppleScript(n.Message), escapeAppleScript(n.Title))
	if n.Sound != "" {
		script += fmt.Sprintf(" sound name \"%s\"", escapeAppleScript(n.Sound))
	}
	return script
}

// escapeAppleScript escapes characters that would terminate an
// AppleScript string literal.
func escapeAppleScript(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
