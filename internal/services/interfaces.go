package services

import (
	"time"

	"github.com/shopspring/decimal"

	"gastos/internal/models"
	"gastos/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Provision(email string) (*models.User, error)
	CompleteRegistration(email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// NamespaceServicer defines the contract for namespace-related business logic.
type NamespaceServicer interface {
	CreateNamespace(userID, name string) (*models.Namespace, error)
	ListNamespaces(userID string) ([]models.Namespace, error)
	UpdateNamespace(userID, namespaceID string, patch NamespacePatch) (*models.Namespace, error)
	DeleteNamespace(userID, namespaceID string) (*models.Namespace, error)
}

// NamespacePatch holds the optional fields of a namespace update.
type NamespacePatch struct {
	Name *string
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, namespaceID, name string) (*models.Category, error)
	ListCategories(userID, namespaceID string) ([]models.Category, error)
	UpdateCategory(userID, namespaceID, categoryID string, patch CategoryPatch) (*models.Category, error)
	DeleteCategory(userID, namespaceID, categoryID string) (*models.Category, error)
}

// CategoryPatch holds the optional fields of a category update. A non-nil
// NamespaceID moves the category to that namespace.
type CategoryPatch struct {
	Name        *string
	NamespaceID *string
}

// ExpenseInput carries the client-supplied fields of an expense. On create,
// nil fields take their defaults; on update, nil fields are left unchanged.
type ExpenseInput struct {
	Merchant    *string
	Date        *time.Time
	Currency    *models.Currency
	Amount      *decimal.Decimal
	Description *string
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Currency *models.Currency
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, namespaceID, categoryID string, in ExpenseInput) (*models.Expense, error)
	ListExpenses(userID, namespaceID, categoryID string, filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpense(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, namespaceID, categoryID, expenseID string, in ExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
