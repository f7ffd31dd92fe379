package model

// TokenGenerator produces opaque session tokens. Every successful login
// generates a fresh token that overwrites the stored one, so exactly one
// token is live per user.
type TokenGenerator interface {
	Generate() (string, error)
}
