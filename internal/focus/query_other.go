//go:build !linux && !darwin

package focus

// NewQuery returns a query that never reports focus; suppression is
// effectively disabled on platforms without a focus source.
func NewQuery() Query {
	return noopQuery{}
}
