package focus

import (
	"context"
	"log/slog"
)

// Resolver answers whether the terminal surface owning a session has
// input focus right now. It performs exactly one live query per call
// and caches nothing: focus can change between consecutive
// notifications.
type Resolver struct {
	Registry Registry
	Query    Query
}

// IsFocused never errors. A missing record, a record without the
// relevant field, or a failed focus query all mean "not focused".
// Matching is exact string equality with no normalization.
func (r *Resolver) IsFocused(ctx context.Context, sessionID string) bool {
	if sessionID == "" || r.Registry == nil || r.Query == nil {
		return false
	}

	rec, ok := r.Registry.Lookup(sessionID)
	if !ok {
		return false
	}

	target := r.Query.SessionTarget(rec)
	if target == "" {
		return false
	}

	focused, err := r.Query.FocusedTarget(ctx)
	if err != nil {
		slog.Debug("focus query failed", "session_id", sessionID, "err", err)
		return false
	}
	return focused == target
}
