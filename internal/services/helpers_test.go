package services

import (
	"time"

	"gastos/internal/validator"
)

// fixedNow is the clock every service test runs against.
var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestValidator() *validator.Validator {
	return validator.New(func() time.Time { return fixedNow })
}

func ptr[T any](v T) *T {
	return &v
}
