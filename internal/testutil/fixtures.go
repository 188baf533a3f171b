package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gastos/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword satisfies the password rules and is set on every completed
// fixture user.
const TestPassword = "Secret#2024"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreatePendingUser creates a provisioned user that has not registered yet.
func CreatePendingUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{Email: fmt.Sprintf("pending%d@test.com", nextID())}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create pending user: %v", err)
	}
	return user
}

// CreateTestUser creates a completed user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a completed user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hash),
		IsCompleted: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestNamespace creates a uniquely named namespace owned by userID.
func CreateTestNamespace(t *testing.T, db *gorm.DB, userID string) *models.Namespace {
	t.Helper()
	return CreateTestNamespaceWithName(t, db, userID, fmt.Sprintf("Space %d", nextID()))
}

// CreateTestNamespaceWithName creates a namespace with the given name.
func CreateTestNamespaceWithName(t *testing.T, db *gorm.DB, userID, name string) *models.Namespace {
	t.Helper()

	ns := &models.Namespace{Name: name, UserID: userID}
	if err := db.Create(ns).Error; err != nil {
		t.Fatalf("failed to create test namespace: %v", err)
	}
	return ns
}

// CreateTestCategory creates a uniquely named category in the namespace.
func CreateTestCategory(t *testing.T, db *gorm.DB, namespaceID string) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, namespaceID, fmt.Sprintf("Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, namespaceID, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, NamespaceID: namespaceID}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates a COP expense dated date in the category.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID string, amount string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Merchant:   fmt.Sprintf("Merchant %d", nextID()),
		Date:       date,
		Currency:   models.CurrencyCOP,
		Amount:     decimal.RequireFromString(amount),
		CategoryID: categoryID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
