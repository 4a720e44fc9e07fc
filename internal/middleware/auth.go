package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/durvibangera/sorte/internal/pkg/jwt"
	"github.com/durvibangera/sorte/internal/pkg/response"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// Auth resolves the acting user from a bearer token. Requests without a
// valid token are rejected; there is no fallback user.
func Auth(cfg *jwt.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		// Support both "Bearer <token>" (case-insensitive) and raw token in header
		fields := strings.Fields(authHeader)
		var tokenString string
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		} else {
			tokenString = authHeader
		}

		claims, err := jwt.ValidateToken(tokenString, cfg)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// UserID returns the id placed on the context by Auth
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
