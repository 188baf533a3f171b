package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/pagination"
	"gastos/internal/validator"
)

// defaultExpenseHour is the UTC hour given to expenses created without a date.
const defaultExpenseHour = 12

type expenseInput struct {
	Merchant    string    `validate:"required,min=5,max=50"`
	Date        time.Time `validate:"not_future"`
	Currency    string    `validate:"currency"`
	Description string    `validate:"max=255"`
}

func (expenseInput) RuleMessages() map[string]string {
	return map[string]string{
		"Merchant.required": "expenses must have a merchant",
		"Merchant.min":      "merchant must have at least 5 characters",
		"Merchant.max":      "merchant must not have more than 50 characters",
		"Date.not_future":   "expenses must not be in the future",
		"Currency.currency": "currency must be COP or USD",
		"Description.max":   "description must not have more than 255 characters",
	}
}

func newExpenseInput(e *models.Expense) expenseInput {
	return expenseInput{
		Merchant:    e.Merchant,
		Date:        e.Date,
		Currency:    string(e.Currency),
		Description: e.Description,
	}
}

// apply copies the non-nil fields of in onto e.
func (in ExpenseInput) apply(e *models.Expense) {
	if in.Merchant != nil {
		e.Merchant = *in.Merchant
	}
	if in.Date != nil {
		e.Date = in.Date.UTC()
	}
	if in.Currency != nil {
		e.Currency = *in.Currency
	}
	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
}

// expenseService handles expense-related business logic.
type expenseService struct {
	db       *gorm.DB
	validate *validator.Validator
	scopes   *ScopeResolver
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, v *validator.Validator) ExpenseServicer {
	return &expenseService{db: db, validate: v, scopes: NewScopeResolver(db)}
}

// DefaultExpenseDate returns today at noon UTC.
func DefaultExpenseDate(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, defaultExpenseHour, 0, 0, 0, time.UTC)
}

// CreateExpense creates an expense in a category reachable by userID.
// Omitted fields take their defaults.
func (s *expenseService) CreateExpense(userID, namespaceID, categoryID string, in ExpenseInput) (*models.Expense, error) {
	scope, err := s.scopes.Category(userID, namespaceID, categoryID, apperrors.ErrExpenseNotCreated)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Date:       DefaultExpenseDate(s.validate.Now()),
		Currency:   models.DefaultCurrency,
		Amount:     decimal.Zero,
		CategoryID: scope.Category.ID,
	}
	in.apply(expense)

	if err := s.validate.Struct(newExpenseInput(expense)); err != nil {
		return nil, err
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListExpenses returns the expenses of a category, newest first, filtered
// and optionally paginated.
func (s *expenseService) ListExpenses(userID, namespaceID, categoryID string, filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	scope, err := s.scopes.Category(userID, namespaceID, categoryID, apperrors.ErrExpensesNotShown)
	if err != nil {
		return nil, err
	}

	base := s.db.Model(&models.Expense{}).Where("category_id = ?", scope.Category.ID)
	if filter.FromDate != nil {
		base = base.Where("date >= ?", filter.FromDate.UTC())
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", filter.ToDate.UTC())
	}
	if filter.Currency != nil {
		base = base.Where("currency = ?", *filter.Currency)
	}

	base = base.Session(&gorm.Session{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !page.Enabled() {
		result := pagination.NewPageResponse(expenses, 1, len(expenses), totalItems)
		return &result, nil
	}
	page.Defaults()
	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpense returns one expense of a category reachable by userID.
func (s *expenseService) GetExpense(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error) {
	return s.scopes.Expense(userID, namespaceID, categoryID, expenseID, apperrors.ErrExpenseNotShown)
}

// UpdateExpense merges in onto the stored expense and validates the result.
func (s *expenseService) UpdateExpense(userID, namespaceID, categoryID, expenseID string, in ExpenseInput) (*models.Expense, error) {
	expense, err := s.scopes.Expense(userID, namespaceID, categoryID, expenseID, apperrors.ErrExpenseNotUpdated)
	if err != nil {
		return nil, err
	}

	in.apply(expense)
	if err := s.validate.Struct(newExpenseInput(expense)); err != nil {
		return nil, err
	}

	if err := s.db.Model(expense).
		Select("merchant", "date", "currency", "amount", "description").
		Updates(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense removes an expense and returns it.
func (s *expenseService) DeleteExpense(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error) {
	expense, err := s.scopes.Expense(userID, namespaceID, categoryID, expenseID, apperrors.ErrExpenseNotDeleted)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}
