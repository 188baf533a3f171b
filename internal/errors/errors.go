// Package errors provides the application error type for the gastos API.
// Services return *AppError values; the HTTP layer renders them as
// {"code", "message"} bodies, localizing Message through the i18n catalog.
// Internal causes are logged and never sent to clients.
package errors

import "net/http"

// AppError represents a structured application error. Message is an English
// catalog key; Args are substituted when the key is a format string.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
	Args       []any  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
		Args:       sentinel.Args,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string, args ...any) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
		Args:       args,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "session expired", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password", StatusCode: http.StatusBadRequest}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "access denied", StatusCode: http.StatusForbidden}
	ErrInvalidAPIKey      = &AppError{Code: "INVALID_API_KEY", Message: "invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrAdminDisabled      = &AppError{Code: "ADMIN_NOT_CONFIGURED", Message: "admin endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_FAILED", Message: "invalid input", StatusCode: http.StatusBadRequest}
	ErrInvariant      = &AppError{Code: "INVARIANT_VIOLATION", Message: "operation not allowed", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "something went wrong", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrRegistrationRefused = &AppError{Code: "FORBIDDEN", Message: "registration could not be completed", StatusCode: http.StatusForbidden}
	ErrAlreadyCompleted    = &AppError{Code: "ALREADY_COMPLETED", Message: "user already completed registration", StatusCode: http.StatusBadRequest}
	ErrInvalidPassword     = &AppError{Code: "VALIDATION_FAILED", Message: "invalid password", StatusCode: http.StatusBadRequest}
	ErrDuplicateEmail      = &AppError{Code: "DUPLICATE_EMAIL", Message: "a user with this email already exists", StatusCode: http.StatusConflict}
)

// Namespace errors.
var (
	ErrNamespaceNotUpdated = &AppError{Code: "FORBIDDEN", Message: "namespace could not be updated", StatusCode: http.StatusForbidden}
	ErrNamespaceNotDeleted = &AppError{Code: "FORBIDDEN", Message: "namespace could not be deleted", StatusCode: http.StatusForbidden}
	ErrLastNamespace       = &AppError{Code: "INVARIANT_VIOLATION", Message: "namespace could not be deleted, must keep at least one namespace", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotCreated = &AppError{Code: "FORBIDDEN", Message: "category could not be created", StatusCode: http.StatusForbidden}
	ErrCategoriesNotShown = &AppError{Code: "FORBIDDEN", Message: "cannot view categories", StatusCode: http.StatusForbidden}
	ErrCategoryNotUpdated = &AppError{Code: "FORBIDDEN", Message: "category could not be updated", StatusCode: http.StatusForbidden}
	ErrCategoryNotDeleted = &AppError{Code: "FORBIDDEN", Message: "category could not be deleted", StatusCode: http.StatusForbidden}
)

// Expense errors.
var (
	ErrExpenseNotCreated = &AppError{Code: "FORBIDDEN", Message: "expense could not be created", StatusCode: http.StatusForbidden}
	ErrExpensesNotShown  = &AppError{Code: "FORBIDDEN", Message: "cannot view expenses", StatusCode: http.StatusForbidden}
	ErrExpenseNotShown   = &AppError{Code: "FORBIDDEN", Message: "cannot view the expense", StatusCode: http.StatusForbidden}
	ErrExpenseNotUpdated = &AppError{Code: "FORBIDDEN", Message: "expense could not be updated", StatusCode: http.StatusForbidden}
	ErrExpenseNotDeleted = &AppError{Code: "FORBIDDEN", Message: "expense could not be deleted", StatusCode: http.StatusForbidden}
)
