package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// UserService defines user directory operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
}

// User handles the user directory endpoint.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type userResponse struct {
	ID        int64     `json:"id"`
	Login     string    `json:"login"`
	CreatedAt time.Time `json:"created_at"`
}

type userListEnvelope struct {
	Status string         `json:"status"`
	Users  []userResponse `json:"users"`
}

// List returns every registered user. Tokens and password hashes are
// never included.
func (h *User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("User handler: failed to list users", "error", err.Error())
		handleError(w, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:        u.ID,
			Login:     u.Login,
			CreatedAt: u.CreatedAt,
		})
	}

	response.JSON(w, http.StatusOK, userListEnvelope{
		Status: response.StatusSuccess,
		Users:  out,
	})
}
