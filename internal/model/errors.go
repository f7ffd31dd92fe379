package model

import "errors"

var (
	// ErrNotFound marks a missing row. Read paths also return it for
	// denied cross-owner access so existence is never confirmed to an
	// unauthorized caller.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate login at registration.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials is returned on login failure without
	// distinguishing unknown login from password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccessDenied marks an authenticated but unauthorized request.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnauthenticated marks a request with no resolvable identity.
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
