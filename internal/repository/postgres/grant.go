package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/bookshelf-server/internal/model"
)

var _ model.GrantStore = (*GrantRepository)(nil)

type GrantRepository struct {
	db *Connection
}

func NewGrantRepository(db *Connection) *GrantRepository {
	return &GrantRepository{
		db: db,
	}
}

// Create inserts an access grant. A duplicate pair is a successful no-op.
func (r *GrantRepository) Create(ctx context.Context, grant model.AccessGrant) error {
	query := `INSERT INTO access_grants (owner_id, guest_id)
			  VALUES ($1, $2)
			  ON CONFLICT (owner_id, guest_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, grant.OwnerID, grant.GuestID)
	if err != nil {
		return fmt.Errorf("failed to create access grant: %w", err)
	}

	return nil
}

func (r *GrantRepository) Exists(ctx context.Context, ownerID, guestID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM access_grants WHERE owner_id = $1 AND guest_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, ownerID, guestID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check access grant: %w", err)
	}

	return exists, nil
}
