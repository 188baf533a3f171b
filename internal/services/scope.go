package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/uuid"
)

// Scope is a resolved ownership chain. Category is nil when only the
// namespace was resolved.
type Scope struct {
	Namespace *models.Namespace
	Category  *models.Category
}

// ScopeResolver walks the ownership chain user → namespace → category →
// expense. Every failed step, including a malformed id, yields the caller's
// denied error so that absent and foreign resources look the same.
type ScopeResolver struct {
	db *gorm.DB
}

// NewScopeResolver creates a ScopeResolver over db.
func NewScopeResolver(db *gorm.DB) *ScopeResolver {
	return &ScopeResolver{db: db}
}

// Namespace resolves a namespace owned by userID.
func (r *ScopeResolver) Namespace(userID, namespaceID string, denied *apperrors.AppError) (*models.Namespace, error) {
	if !uuid.IsValid(namespaceID) {
		return nil, denied
	}
	var ns models.Namespace
	if err := r.db.Where("id = ? AND user_id = ?", namespaceID, userID).First(&ns).Error; err != nil {
		return nil, lookupError(err, denied)
	}
	return &ns, nil
}

// Category resolves a category inside a namespace owned by userID.
func (r *ScopeResolver) Category(userID, namespaceID, categoryID string, denied *apperrors.AppError) (*Scope, error) {
	ns, err := r.Namespace(userID, namespaceID, denied)
	if err != nil {
		return nil, err
	}
	if !uuid.IsValid(categoryID) {
		return nil, denied
	}
	var category models.Category
	if err := r.db.Where("id = ? AND namespace_id = ?", categoryID, ns.ID).First(&category).Error; err != nil {
		return nil, lookupError(err, denied)
	}
	return &Scope{Namespace: ns, Category: &category}, nil
}

// Expense resolves an expense through its full chain.
func (r *ScopeResolver) Expense(userID, namespaceID, categoryID, expenseID string, denied *apperrors.AppError) (*models.Expense, error) {
	scope, err := r.Category(userID, namespaceID, categoryID, denied)
	if err != nil {
		return nil, err
	}
	if !uuid.IsValid(expenseID) {
		return nil, denied
	}
	var expense models.Expense
	if err := r.db.Where("id = ? AND category_id = ?", expenseID, scope.Category.ID).First(&expense).Error; err != nil {
		return nil, lookupError(err, denied)
	}
	return &expense, nil
}

func lookupError(err error, denied *apperrors.AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return denied
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
