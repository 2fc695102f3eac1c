//go:build darwin

package focus

// NewIdler returns the IOKit HID idle reader used on macOS.
func NewIdler() Idler {
	return &HIDIdler{run: runCommand}
}
