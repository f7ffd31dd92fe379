package model

import (
	"context"
	"time"
)

// GrantStore defines persistence operations for access grants.
type GrantStore interface {
	Create(ctx context.Context, grant AccessGrant) error
	Exists(ctx context.Context, ownerID, guestID int64) (bool, error)
}

// AccessGrant is a one-way permission letting a guest read an owner's
// book collection. The (owner, guest) pair is unique; creation is
// idempotent.
type AccessGrant struct {
	OwnerID   int64
	GuestID   int64
	CreatedAt time.Time
}
