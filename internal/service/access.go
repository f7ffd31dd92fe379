package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// Access decides whether a requester may read an owner's books and
// manages owner→guest grants.
type Access struct {
	grantStore model.GrantStore
	userStore  model.UserStore
	logger     *logger.Logger
}

func NewAccess(
	grantStore model.GrantStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Access {
	return &Access{
		grantStore: grantStore,
		userStore:  userStore,
		logger:     logger,
	}
}

// Authorize reports whether requesterID may read ownerID's books.
// Self-access never touches the store.
func (s *Access) Authorize(ctx context.Context, ownerID, requesterID int64) (bool, error) {
	if ownerID == requesterID {
		return true, nil
	}

	exists, err := s.grantStore.Exists(ctx, ownerID, requesterID)
	if err != nil {
		return false, fmt.Errorf("failed to check access grant: %w", err)
	}

	return exists, nil
}

// Grant lets guestID read ownerID's books. Granting twice, or granting
// to oneself, is a successful no-op.
func (s *Access) Grant(ctx context.Context, ownerID, guestID int64) error {
	s.logger.Debug("Access service: granting access", "owner_id", ownerID, "guest_id", guestID)

	if ownerID == guestID {
		return nil
	}

	_, err := s.userStore.GetByID(ctx, guestID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("Access service: failed to get guest",
			"guest_id", guestID,
			"error", err.Error())
		return fmt.Errorf("failed to get guest by id: %w", err)
	}

	if err := s.grantStore.Create(ctx, model.AccessGrant{OwnerID: ownerID, GuestID: guestID}); err != nil {
		s.logger.Error("Access service: failed to create grant",
			"owner_id", ownerID,
			"guest_id", guestID,
			"error", err.Error())
		return fmt.Errorf("failed to create access grant: %w", err)
	}

	s.logger.Info("Access service: access granted", "owner_id", ownerID, "guest_id", guestID)

	return nil
}
