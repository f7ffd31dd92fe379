package context

import (
	"context"
)

type ctxKey int

// userIDKey carries the authenticated user id through the request context.
const userIDKey ctxKey = iota

// Manager sets and retrieves the authenticated user id on request
// contexts. The key type is unexported so other packages cannot forge
// an identity.
type Manager struct{}

// NewManager creates a new request context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserID returns a context carrying the authenticated user id.
func (m *Manager) SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID retrieves the authenticated user id from the context. The
// boolean is false when the request carries no identity.
func (m *Manager) UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
