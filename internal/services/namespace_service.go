package services

import (
	"gorm.io/gorm"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/validator"
)

type namespaceInput struct {
	Name string `validate:"required,min=5,max=25"`
}

func (namespaceInput) RuleMessages() map[string]string {
	return map[string]string{
		"Name.required": "namespaces must have a name",
		"Name.min":      "namespaces must have at least 5 characters",
		"Name.max":      "namespaces must not have more than 25 characters",
	}
}

// namespaceService handles namespace-related business logic.
type namespaceService struct {
	db       *gorm.DB
	validate *validator.Validator
	scopes   *ScopeResolver
}

// NewNamespaceService creates a new NamespaceServicer.
func NewNamespaceService(db *gorm.DB, v *validator.Validator) NamespaceServicer {
	return &namespaceService{db: db, validate: v, scopes: NewScopeResolver(db)}
}

// CreateNamespace creates a namespace owned by userID.
func (s *namespaceService) CreateNamespace(userID, name string) (*models.Namespace, error) {
	if err := s.checkName(userID, name, ""); err != nil {
		return nil, err
	}

	ns := &models.Namespace{Name: name, UserID: userID}
	if err := s.db.Create(ns).Error; err != nil {
		return nil, persistError(err, msgNamespaceExists)
	}
	return ns, nil
}

// ListNamespaces returns every namespace owned by userID, oldest first.
func (s *namespaceService) ListNamespaces(userID string) ([]models.Namespace, error) {
	namespaces := []models.Namespace{}
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&namespaces).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return namespaces, nil
}

// UpdateNamespace applies patch to a namespace owned by userID.
func (s *namespaceService) UpdateNamespace(userID, namespaceID string, patch NamespacePatch) (*models.Namespace, error) {
	ns, err := s.scopes.Namespace(userID, namespaceID, apperrors.ErrNamespaceNotUpdated)
	if err != nil {
		return nil, err
	}

	if patch.Name == nil {
		return ns, nil
	}

	if err := s.checkName(userID, *patch.Name, ns.ID); err != nil {
		return nil, err
	}

	if err := s.db.Model(ns).Update("name", *patch.Name).Error; err != nil {
		return nil, persistError(err, msgNamespaceExists)
	}
	ns.Name = *patch.Name
	return ns, nil
}

// DeleteNamespace removes a namespace with its categories and expenses. The
// owner's last namespace cannot be deleted.
func (s *namespaceService) DeleteNamespace(userID, namespaceID string) (*models.Namespace, error) {
	ns, err := s.scopes.Namespace(userID, namespaceID, apperrors.ErrNamespaceNotDeleted)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Namespace{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count <= 1 {
		return nil, apperrors.ErrLastNamespace
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := tx.Model(&models.Category{}).Select("id").Where("namespace_id = ?", ns.ID)
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("namespace_id = ?", ns.ID).Delete(&models.Category{}).Error; err != nil {
			return err
		}

		// The count guard is repeated in the delete itself so that two
		// concurrent deletes cannot both pass the check above.
		res := tx.Where("id = ? AND user_id = ?", ns.ID, userID).
			Where("(SELECT COUNT(*) FROM namespaces WHERE user_id = ?) > 1", userID).
			Delete(&models.Namespace{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrLastNamespace
		}
		return nil
	})
	if err != nil {
		return nil, persistError(err, msgNamespaceExists)
	}
	return ns, nil
}

// checkName validates a namespace name and its uniqueness among the
// owner's namespaces, ignoring excludeID.
func (s *namespaceService) checkName(userID, name, excludeID string) error {
	if err := s.validate.Struct(namespaceInput{Name: name}); err != nil {
		return err
	}
	taken, err := namespaceNameTaken(s.db, userID, name, excludeID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return apperrors.WithMessage(apperrors.ErrValidation, msgNamespaceExists)
	}
	return nil
}
