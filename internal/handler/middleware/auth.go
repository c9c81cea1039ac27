package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"venue-pricing/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxClientIDKey = "client_id"
	ctxRoleKey     = "client_role"
)

// AuthMiddleware validates service bearer tokens. Tokens are issued by
// the auth service sharing the signing secret.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxClientIDKey, claims.ClientID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func GetClientID(c *gin.Context) (string, bool) {
	clientID, exists := c.Get(ctxClientIDKey)
	if !exists {
		return "", false
	}

	id, ok := clientID.(string)
	return id, ok
}
