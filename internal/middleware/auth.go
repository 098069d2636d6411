package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/floodwatch/floodwatch-backend-go/pkg/response"
)

// UserEmailKey is the context key under which the authenticated user's
// email is stored
const UserEmailKey = "user_email"

// TokenVerifier validates a bearer token and returns the user handle it
// identifies
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Auth middleware requires a valid Bearer token and stores the
// authenticated email on the request context
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c, "Missing or invalid authorization header")
			c.Abort()
			return
		}

		email, err := verifier.VerifyToken(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserEmailKey, email)
		c.Next()
	}
}

// UserEmail returns the authenticated email set by Auth
func UserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
