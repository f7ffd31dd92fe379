package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// AccessService defines access grant operations.
type AccessService interface {
	Grant(ctx context.Context, ownerID, guestID int64) error
}

// Access handles the access grant endpoint.
type Access struct {
	accessService  AccessService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAccess creates a new Access handler.
func NewAccess(accessService AccessService, contextManager model.ContextManager, logger *logger.Logger) *Access {
	return &Access{
		accessService:  accessService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type grantRequest struct {
	GuestID int64 `json:"guest_id"`
}

// Grant lets the caller open their collection to another user. Granting
// to oneself or repeating an existing grant succeeds without effect.
func (h *Access) Grant(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.accessService.Grant(r.Context(), userID, req.GuestID); err != nil {
		h.logger.Error("Access handler: failed to grant access",
			"owner_id", userID,
			"guest_id", req.GuestID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Access handler: access granted", "owner_id", userID, "guest_id", req.GuestID)

	response.JSON(w, http.StatusOK, struct {
		Status string `json:"status"`
	}{Status: response.StatusSuccess})
}
