package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
)

const (
	msgNamespaceExists = "namespace already exists"
	msgCategoryExists  = "category already exists in this namespace"
)

// namespaceNameTaken reports whether userID already owns a namespace called
// name, ignoring excludeID.
func namespaceNameTaken(db *gorm.DB, userID, name, excludeID string) (bool, error) {
	q := db.Model(&models.Namespace{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// categoryNameTaken reports whether namespaceID already holds a category
// called name, ignoring excludeID.
func categoryNameTaken(db *gorm.DB, namespaceID, name, excludeID string) (bool, error) {
	q := db.Model(&models.Category{}).Where("namespace_id = ? AND name = ?", namespaceID, name)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// persistError maps a write failure to an AppError. Unique index violations
// that slip past the explicit checks become the duplicate message.
func persistError(err error, duplicateMessage string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.WithMessage(apperrors.ErrValidation, duplicateMessage)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
