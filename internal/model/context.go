package model

import "context"

// ContextManager carries the authenticated user identity through a
// request context. The boolean distinguishes "unauthenticated" from any
// stored identifier, so a valid id is never truth-tested against zero.
type ContextManager interface {
	SetUserID(ctx context.Context, userID int64) context.Context
	UserID(ctx context.Context) (int64, bool)
}
