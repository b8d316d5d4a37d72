package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the validity window of issued tokens.
const DefaultExpiration = 12 * time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed payload or an elapsed validity window.
// Callers must not distinguish between those causes.
var ErrInvalidToken = errors.New("invalid token")

// Generator defines the interface for token issuance.
type Generator interface {
	// GenerateToken creates a signed token for the given account.
	GenerateToken(accountID uint) (string, error)
}

// Verifier defines the interface for token verification.
type Verifier interface {
	// VerifyToken checks the token and returns the embedded account ID.
	VerifyToken(token string) (uint, error)
}

// Manager issues and verifies HS256-signed tokens with an injected secret.
// The secret is process-wide configuration; its absence is a startup error,
// never a per-request one.
type Manager struct {
	secret     []byte
	expiration time.Duration
}

// NewManager creates a token manager with the provided secret and expiration duration.
func NewManager(secret string, expiration time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed token with standard claims.
// The account ID travels in the "sub" claim.
func (m *Manager) GenerateToken(accountID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID,
		"iat": now.Unix(),
		"exp": now.Add(m.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates the token and returns the account ID
// carried in the "sub" claim. Every failure collapses into ErrInvalidToken.
func (m *Manager) VerifyToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; reject algorithm substitution.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
