package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slot-booking-api/internal/usecase"
)

type AuthMiddleware struct {
	sessions usecase.SessionRegistry
}

func NewAuthMiddleware(sessions usecase.SessionRegistry) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// BearerToken extracts the token from the Authorization header, or "" when
// the header is absent or not a bearer scheme.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// RequireAuth gates operator-only routes. Missing, malformed, and unknown
// tokens all get the same fixed 401; callers learn nothing about why.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if !m.sessions.Authorize(token) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
