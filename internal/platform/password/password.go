// Package password wraps bcrypt hashing and verification of account passwords.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// workFactor is the bcrypt cost used for all new hashes.
const workFactor = 10

// Hasher hashes and verifies passwords using bcrypt.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the fixed production work factor.
func NewHasher() *Hasher {
	return &Hasher{cost: workFactor}
}

// Hash derives a salted bcrypt hash from the raw password.
func (h *Hasher) Hash(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether raw matches the stored bcrypt hash.
// A mismatch or a malformed hash returns false, never an error.
func (h *Hasher) Verify(raw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)) == nil
}
