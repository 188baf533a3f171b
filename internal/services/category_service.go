package services

import (
	"gorm.io/gorm"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/validator"
)

type categoryInput struct {
	Name string `validate:"required,min=5,max=25"`
}

func (categoryInput) RuleMessages() map[string]string {
	return map[string]string{
		"Name.required": "categories must have a name",
		"Name.min":      "categories must have at least 5 characters",
		"Name.max":      "categories must not have more than 25 characters",
	}
}

// categoryService handles category-related business logic.
type categoryService struct {
	db       *gorm.DB
	validate *validator.Validator
	scopes   *ScopeResolver
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB, v *validator.Validator) CategoryServicer {
	return &categoryService{db: db, validate: v, scopes: NewScopeResolver(db)}
}

// CreateCategory creates a category in a namespace owned by userID.
func (s *categoryService) CreateCategory(userID, namespaceID, name string) (*models.Category, error) {
	ns, err := s.scopes.Namespace(userID, namespaceID, apperrors.ErrCategoryNotCreated)
	if err != nil {
		return nil, err
	}

	if err := s.checkName(ns.ID, name, ""); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name, NamespaceID: ns.ID}
	if err := s.db.Create(category).Error; err != nil {
		return nil, persistError(err, msgCategoryExists)
	}
	return category, nil
}

// ListCategories returns the categories of a namespace owned by userID.
func (s *categoryService) ListCategories(userID, namespaceID string) ([]models.Category, error) {
	ns, err := s.scopes.Namespace(userID, namespaceID, apperrors.ErrCategoriesNotShown)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := s.db.Where("namespace_id = ?", ns.ID).Order("created_at ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// UpdateCategory renames a category and/or moves it to another namespace.
// Both the current and the destination namespace must belong to userID.
func (s *categoryService) UpdateCategory(userID, namespaceID, categoryID string, patch CategoryPatch) (*models.Category, error) {
	denied := apperrors.ErrCategoryNotUpdated

	var target string
	if patch.NamespaceID != nil {
		dest, err := s.scopes.Namespace(userID, *patch.NamespaceID, denied)
		if err != nil {
			return nil, err
		}
		target = dest.ID
	}

	scope, err := s.scopes.Category(userID, namespaceID, categoryID, denied)
	if err != nil {
		return nil, err
	}
	category := scope.Category
	if target == "" {
		target = category.NamespaceID
	}

	name := category.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	nameChanged := name != category.Name
	moved := target != category.NamespaceID

	if nameChanged || moved {
		if err := s.checkName(target, name, category.ID); err != nil {
			return nil, err
		}
	}
	if !nameChanged && !moved {
		return category, nil
	}

	updates := map[string]any{"name": name, "namespace_id": target}
	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, persistError(err, msgCategoryExists)
	}
	category.Name = name
	category.NamespaceID = target
	return category, nil
}

// DeleteCategory removes a category and its expenses.
func (s *categoryService) DeleteCategory(userID, namespaceID, categoryID string) (*models.Category, error) {
	scope, err := s.scopes.Category(userID, namespaceID, categoryID, apperrors.ErrCategoryNotDeleted)
	if err != nil {
		return nil, err
	}
	category := scope.Category

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(category).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// checkName validates a category name and its uniqueness inside
// namespaceID, ignoring excludeID.
func (s *categoryService) checkName(namespaceID, name, excludeID string) error {
	if err := s.validate.Struct(categoryInput{Name: name}); err != nil {
		return err
	}
	taken, err := categoryNameTaken(s.db, namespaceID, name, excludeID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return apperrors.WithMessage(apperrors.ErrValidation, msgCategoryExists)
	}
	return nil
}
