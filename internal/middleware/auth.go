package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "gastos/internal/errors"
	"gastos/internal/token"
)

// UserIDKey is the Gin context key holding the authenticated user id.
const UserIDKey = "userID"

// AuthMiddleware verifies the bearer token and sets the user id in the
// context. A missing or malformed header is answered here with 401; a token
// that fails verification is attached to the context and left for
// ErrorHandler.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			WriteError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			WriteError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
