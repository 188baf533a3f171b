// Package validator runs declarative field rules over service inputs and
// registers the same custom rules with Gin's binding engine.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
)

const passwordSymbols = "#?!@$ %^&*-"

// RuleMessages is implemented by inputs that map a failing rule to a message
// key. Keys have the form "Field.tag", e.g. "Name.min".
type RuleMessages interface {
	RuleMessages() map[string]string
}

// Validator checks structs and reports only the first failing rule.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New builds a Validator. now is the clock used by the not_future rule; nil
// means time.Now.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}
	register(v.validate, now)
	return v
}

// Now returns the validator's clock reading.
func (v *Validator) Now() time.Time {
	return v.now()
}

// Struct validates s. On failure it returns a VALIDATION_FAILED AppError whose
// message is the first failing rule's key.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var messages map[string]string
	if rm, ok := s.(RuleMessages); ok {
		messages = rm.RuleMessages()
	}
	return Translate(err, messages)
}

// Translate maps a validation error to a VALIDATION_FAILED AppError carrying
// the message registered for the first failing "Field.tag". Errors that are
// not field errors, such as malformed JSON, keep the generic message.
func Translate(err error, messages map[string]string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.StructField()+"."+first.Tag()]; ok {
		return apperrors.WithMessage(apperrors.ErrValidation, msg)
	}
	return apperrors.Wrap(apperrors.ErrValidation, err)
}

// Register registers the custom rules with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v, time.Now)
	}
}

func register(v *validator.Validate, now func() time.Time) {
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("password", validatePassword)
	// not_future compares at day granularity against the UTC calendar day.
	_ = v.RegisterValidation("not_future", func(fl validator.FieldLevel) bool {
		return validateNotFuture(fl, now)
	})
}

// EndOfDay returns the last instant of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// IsCurrency reports whether s is an accepted expense currency.
func IsCurrency(s string) bool {
	switch models.Currency(s) {
	case models.CurrencyCOP, models.CurrencyUSD:
		return true
	}
	return false
}

// IsPassword reports whether s has at least 8 characters including an upper
// case letter, a lower case letter, a digit and one of #?!@$ %^&*-.
func IsPassword(s string) bool {
	if len([]rune(s)) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func validateCurrency(fl validator.FieldLevel) bool {
	return IsCurrency(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsPassword(fl.Field().String())
}

var timeType = reflect.TypeOf(time.Time{})

func validateNotFuture(fl validator.FieldLevel, now func() time.Time) bool {
	field := fl.Field()
	if field.Type() != timeType {
		return false
	}
	t := field.Interface().(time.Time)
	return !t.After(EndOfDay(now().UTC()))
}
