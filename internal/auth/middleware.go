package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextKeyUserID = "user_id"

// UserIDFromContext returns the account id set by RequireToken. Empty if not set.
func UserIDFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}

// RequireToken returns a middleware that reads the raw Authorization header as
// a token, verifies it against the given tier's Issuer and sets the account id
// in context. Missing token responds 401, invalid/expired/wrong-tier 403.
// The guard does no store lookup: a still-valid token for a deleted account
// passes here and fails in the handler.
func RequireToken(tokens *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Token not provided"})
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Invalid token"})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}
