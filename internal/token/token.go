// Package token generates the opaque shared secrets handed out by the
// admin interface and checked on internal sync calls.
package token

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenBytes is the raw entropy per token; hex encoding doubles the length.
const TokenBytes = 32

// New returns a cryptographically random 64-character hex token. At 256 bits
// of entropy collisions are not a practical concern, so unlike short codes no
// database uniqueness probe is needed before insert.
func New() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
