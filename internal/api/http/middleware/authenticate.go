package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/bookshelf-server/internal/api/http/response"
	"github.com/dtroode/bookshelf-server/internal/logger"
	"github.com/dtroode/bookshelf-server/internal/model"
)

// TokenResolver resolves an API token to a user id. A token that does
// not map to a user resolves to no identity without an error.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (int64, bool, error)
}

// Authenticate resolves the request's API token and injects the user id
// into the request context. Requests without a valid token are rejected
// before reaching the handler.
type Authenticate struct {
	tokens         TokenResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with token authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)

		userID, ok, err := m.tokens.ResolveToken(r.Context(), token)
		if err != nil {
			m.logger.Error("Authenticate middleware: failed to resolve token",
				"path", r.URL.Path,
				"error", err.Error())
			response.Error(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if !ok {
			response.Error(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}

		ctx := m.contextManager.SetUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the API token from the Authorization header,
// falling back to the token query parameter.
func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, found := strings.CutPrefix(auth, "Bearer "); found {
			return token
		}
		return ""
	}

	return r.URL.Query().Get("token")
}
