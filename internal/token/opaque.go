package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/dtroode/bookshelf-server/internal/model"
)

// tokenBytes gives 256 bits of randomness per token.
const tokenBytes = 32

var _ model.TokenGenerator = (*Opaque)(nil)

// Opaque generates opaque session tokens from a cryptographically
// secure random source. Tokens carry no claims; resolution is an exact
// lookup against the stored value.
type Opaque struct{}

// NewOpaque creates a new Opaque token generator.
func NewOpaque() *Opaque {
	return &Opaque{}
}

// Generate returns a hex-encoded random token.
func (g *Opaque) Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
