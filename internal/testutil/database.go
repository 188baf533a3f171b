// Package testutil provides test helpers for setting up in-memory databases,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"gastos/internal/database"

	"gorm.io/gorm"
)

// SetupTestDB creates a private in-memory SQLite database with all models
// migrated. The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestManager(t).DB()
}

// SetupTestManager is SetupTestDB returning the database.Manager, for tests
// that need Ping or Reset.
func SetupTestManager(t *testing.T) *database.Manager {
	t.Helper()

	url := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	m, err := database.Open(&database.Config{Driver: database.DriverSQLite, URL: url})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if err := m.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return m
}
