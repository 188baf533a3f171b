package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "gastos/internal/errors"
	"gastos/internal/i18n"
	"gastos/internal/logger"
	"gastos/internal/token"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. Token verification failures
// become 401; other unexpected errors are logged and return a generic
// internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err
		if token.IsVerificationError(err) {
			logger.Get().Debugw("token rejected", "error", err.Error(), "path", c.Request.URL.Path)
			err = apperrors.Wrap(apperrors.ErrUnauthorized, err)
		}
		WriteError(c, err)
	}
}

// WriteError writes err as a {"code", "message"} body with the message
// localized for the request. Non-AppErrors are logged and rendered as a
// generic internal error.
func WriteError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil && appErr.StatusCode >= 500 {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	c.JSON(appErr.StatusCode, gin.H{
		"code":    appErr.Code,
		"message": i18n.T(c, appErr.Message, appErr.Args...),
	})
}
