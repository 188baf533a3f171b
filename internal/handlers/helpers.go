package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	apperrors "gastos/internal/errors"
	"gastos/internal/i18n"
	"gastos/internal/middleware"
	"gastos/internal/validator"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is a success body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// bindJSON decodes the request body into dst, reporting failures as
// VALIDATION_FAILED. An empty body leaves dst untouched.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var messages map[string]string
		if rm, ok := dst.(validator.RuleMessages); ok {
			messages = rm.RuleMessages()
		}
		return validator.Translate(err, messages)
	}
	return nil
}

// respondWithError writes a consistent, localized JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// localize translates a message key for the request.
func localize(c *gin.Context, key string, args ...any) string {
	return i18n.T(c, key, args...)
}
