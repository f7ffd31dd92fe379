package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, login, password string) (model.User, error)
	Login(ctx context.Context, login, password string) (model.User, error)
}

// Auth handles registration and login endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// Register creates a user account and returns its first API token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"login", req.Login,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: user registered", "user_id", user.ID, "login", user.Login)

	response.JSON(w, http.StatusCreated, tokenResponse{
		Status: response.StatusSuccess,
		UserID: user.ID,
		Token:  user.APIToken,
	})
}

// Login verifies credentials and returns a freshly rotated API token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"login", req.Login,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: user logged in", "user_id", user.ID, "login", user.Login)

	response.JSON(w, http.StatusOK, tokenResponse{
		Status: response.StatusSuccess,
		UserID: user.ID,
		Token:  user.APIToken,
	})
}
