package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency is the ISO 4217 code of an expense.
type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
)

// DefaultCurrency is applied when an expense is created without a currency.
const DefaultCurrency = CurrencyCOP

// Expense is a dated monetary record inside one category.
type Expense struct {
	Base
	Merchant    string          `gorm:"size:50;not null" json:"merchant"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Currency    Currency        `gorm:"size:3;not null;default:COP" json:"currency"`
	Amount      decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"amount"`
	Description string          `gorm:"size:255;not null;default:''" json:"description"`
	CategoryID  string          `gorm:"type:uuid;not null;index" json:"category_id"`
}
