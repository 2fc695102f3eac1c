//go:build !linux && !darwin

package focus

// NewIdler returns an idler that never reports the user away;
// platforms without an idle source keep plain focus suppression.
func NewIdler() Idler {
	return zeroIdler{}
}
