//go:build linux

package focus

// NewIdler returns the desktop idle reader used on Linux.
func NewIdler() Idler {
	return &DesktopIdler{run: runCommand, busIdle: mutterIdleTime}
}
