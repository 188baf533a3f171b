package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/validator"
)

type provisionInput struct {
	Email string `validate:"required,email"`
}

func (provisionInput) RuleMessages() map[string]string {
	return map[string]string{
		"Email.required": "email is required",
		"Email.email":    "email must be valid",
	}
}

type registrationInput struct {
	Password string `validate:"required,password"`
}

func (registrationInput) RuleMessages() map[string]string {
	return map[string]string{
		"Password.required": "invalid password",
		"Password.password": "invalid password",
	}
}

// userService handles user-related business logic.
type userService struct {
	db       *gorm.DB
	validate *validator.Validator
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, v *validator.Validator) UserServicer {
	return &userService{db: db, validate: v}
}

// Provision creates a pending user that may later complete registration.
func (s *userService) Provision(email string) (*models.User, error) {
	email = normalizeEmail(email)
	if err := s.validate.Struct(provisionInput{Email: email}); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	user := &models.User{Email: email}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// CompleteRegistration sets the password of a pending user, marks it
// completed and gives it the default namespace.
func (s *userService) CompleteRegistration(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRegistrationRefused
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if user.IsCompleted {
		return nil, apperrors.ErrAlreadyCompleted
	}

	if err := s.validate.Struct(registrationInput{Password: password}); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional on is_completed so a concurrent registration cannot win twice.
		res := tx.Model(&models.User{}).
			Where("id = ? AND is_completed = ?", user.ID, false).
			Updates(map[string]any{"password": string(hashedPassword), "is_completed": true})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrAlreadyCompleted
		}
		return tx.Create(&models.Namespace{Name: models.DefaultNamespaceName, UserID: user.ID}).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.Password = string(hashedPassword)
	user.IsCompleted = true
	return &user, nil
}

// Authenticate checks the credentials of a completed user. Every failure is
// reported as the same invalid-credentials error.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !user.IsCompleted || user.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
