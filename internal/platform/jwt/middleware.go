package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume_backend/internal/api"
)

// ContextAccountID is the gin context key holding the authenticated account ID.
const ContextAccountID = "accountID"

// AccountChecker reports whether an account still exists. The guard re-checks
// on every call so a deleted account's outstanding tokens stop working
// immediately, not at token expiry. No caching sits in front of this lookup.
type AccountChecker interface {
	Exists(ctx context.Context, accountID uint) (bool, error)
}

// AuthRequired returns a Gin middleware that resolves the caller's identity
// from a bearer token and restricts access to existing accounts.
// Missing token, failed verification and vanished accounts are all reported
// as the same generic 401.
func AuthRequired(verifier Verifier, accounts AccountChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		accountID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
			return
		}

		exists, err := accounts.Exists(c.Request.Context(), accountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
			return
		}
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Next()
	}
}

// AccountID extracts the authenticated account ID set by AuthRequired.
func AccountID(c *gin.Context) uint {
	return c.GetUint(ContextAccountID)
}
