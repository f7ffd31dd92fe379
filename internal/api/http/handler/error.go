package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// handleError maps service errors to HTTP status codes. Unrecognized
// errors are reported as a generic internal error so internals never
// leak to clients.
func handleError(w http.ResponseWriter, err error) {
	var valErr *model.ValidationError

	switch {
	case errors.As(err, &valErr):
		response.Error(w, http.StatusBadRequest, valErr.Message)
	case errors.Is(err, model.ErrConflict):
		response.Error(w, http.StatusConflict, "already exists")
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "invalid login or password")
	case errors.Is(err, model.ErrUnauthenticated):
		response.Error(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, model.ErrAccessDenied):
		response.Error(w, http.StatusForbidden, "access denied")
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, http.StatusNotFound, "not found")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
