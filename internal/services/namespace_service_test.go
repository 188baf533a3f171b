package services

import (
	"strings"
	"testing"

	"gastos/internal/models"
	"gastos/internal/testutil"
)

func TestCreateNamespace(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)

		ns, err := svc.CreateNamespace(user.ID, "Household")
		testutil.AssertNoError(t, err)

		if ns.ID == "" {
			t.Fatal("expected namespace ID")
		}
		if ns.UserID != user.ID {
			t.Errorf("expected owner %s, got %s", user.ID, ns.UserID)
		}
	})

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "empty", input: "", message: "namespaces must have a name"},
		{name: "too_short", input: "abcd", message: "namespaces must have at least 5 characters"},
		{name: "too_long", input: strings.Repeat("a", 26), message: "namespaces must not have more than 25 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			svc := NewNamespaceService(db, newTestValidator())
			user := testutil.CreateTestUser(t, db)

			_, err := svc.CreateNamespace(user.ID, tt.input)
			testutil.AssertAppMessage(t, err, "VALIDATION_FAILED", tt.message)
		})
	}

	t.Run("boundaries", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateNamespace(user.ID, "abcde")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateNamespace(user.ID, strings.Repeat("b", 25))
		testutil.AssertNoError(t, err)
		_, err = svc.CreateNamespace(user.ID, "Añoño")
		testutil.AssertNoError(t, err)
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateNamespace(user.ID, "Household")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateNamespace(user.ID, "Household")
		testutil.AssertAppMessage(t, err, "VALIDATION_FAILED", "namespace already exists")
	})

	t.Run("same_name_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.CreateNamespace(alice.ID, "Household")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateNamespace(bob.ID, "Household")
		testutil.AssertNoError(t, err)
	})

	t.Run("unique_index_backstop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestNamespaceWithName(t, db, user.ID, "Household")

		err := db.Create(&models.Namespace{Name: "Household", UserID: user.ID}).Error
		testutil.AssertAppMessage(t, persistError(err, msgNamespaceExists), "VALIDATION_FAILED", "namespace already exists")
	})
}

func TestListNamespaces(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewNamespaceService(db, newTestValidator())
	alice := testutil.CreateTestUser(t, db)
	bob := testutil.CreateTestUser(t, db)

	testutil.CreateTestNamespace(t, db, alice.ID)
	testutil.CreateTestNamespace(t, db, alice.ID)
	testutil.CreateTestNamespace(t, db, bob.ID)

	t.Run("own_only", func(t *testing.T) {
		namespaces, err := svc.ListNamespaces(alice.ID)
		testutil.AssertNoError(t, err)
		if len(namespaces) != 2 {
			t.Fatalf("expected 2 namespaces, got %d", len(namespaces))
		}
		for _, ns := range namespaces {
			if ns.UserID != alice.ID {
				t.Errorf("listed foreign namespace %s", ns.ID)
			}
		}
	})

	t.Run("empty_is_not_nil", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		namespaces, err := svc.ListNamespaces(stranger.ID)
		testutil.AssertNoError(t, err)
		if namespaces == nil || len(namespaces) != 0 {
			t.Errorf("expected empty slice, got %v", namespaces)
		}
	})
}

func TestUpdateNamespace(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		ns := testutil.CreateTestNamespace(t, db, user.ID)

		updated, err := svc.UpdateNamespace(user.ID, ns.ID, NamespacePatch{Name: ptr("Vacation")})
		testutil.AssertNoError(t, err)
		if updated.Name != "Vacation" {
			t.Errorf("expected Vacation, got %s", updated.Name)
		}

		var stored models.Namespace
		db.First(&stored, "id = ?", ns.ID)
		if stored.Name != "Vacation" {
			t.Errorf("expected stored name Vacation, got %s", stored.Name)
		}
	})

	t.Run("same_name_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		ns := testutil.CreateTestNamespaceWithName(t, db, user.ID, "Household")

		_, err := svc.UpdateNamespace(user.ID, ns.ID, NamespacePatch{Name: ptr("Household")})
		testutil.AssertNoError(t, err)
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestNamespaceWithName(t, db, user.ID, "Household")
		ns := testutil.CreateTestNamespaceWithName(t, db, user.ID, "Vacation")

		_, err := svc.UpdateNamespace(user.ID, ns.ID, NamespacePatch{Name: ptr("Household")})
		testutil.AssertAppMessage(t, err, "VALIDATION_FAILED", "namespace already exists")
	})

	t.Run("too_short", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		ns := testutil.CreateTestNamespace(t, db, user.ID)

		_, err := svc.UpdateNamespace(user.ID, ns.ID, NamespacePatch{Name: ptr("abc")})
		testutil.AssertAppMessage(t, err, "VALIDATION_FAILED", "namespaces must have at least 5 characters")
	})

	t.Run("empty_patch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		ns := testutil.CreateTestNamespace(t, db, user.ID)

		updated, err := svc.UpdateNamespace(user.ID, ns.ID, NamespacePatch{})
		testutil.AssertNoError(t, err)
		if updated.Name != ns.Name {
			t.Errorf("expected unchanged name %s, got %s", ns.Name, updated.Name)
		}
	})

	t.Run("foreign_namespace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		ns := testutil.CreateTestNamespace(t, db, bob.ID)

		_, err := svc.UpdateNamespace(alice.ID, ns.ID, NamespacePatch{Name: ptr("Stolen space")})
		testutil.AssertAppMessage(t, err, "FORBIDDEN", "namespace could not be updated")
	})

	t.Run("malformed_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateNamespace(user.ID, "not-a-uuid", NamespacePatch{Name: ptr("Vacation")})
		testutil.AssertAppMessage(t, err, "FORBIDDEN", "namespace could not be updated")
	})
}

func TestDeleteNamespace(t *testing.T) {
	t.Run("last_namespace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		ns := testutil.CreateTestNamespace(t, db, user.ID)

		_, err := svc.DeleteNamespace(user.ID, ns.ID)
		testutil.AssertAppMessage(t, err, "INVARIANT_VIOLATION", "namespace could not be deleted, must keep at least one namespace")

		var count int64
		db.Model(&models.Namespace{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected namespace to survive, found %d", count)
		}
	})

	t.Run("foreign_namespace", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		testutil.CreateTestNamespace(t, db, alice.ID)
		testutil.CreateTestNamespace(t, db, alice.ID)
		ns := testutil.CreateTestNamespace(t, db, bob.ID)
		testutil.CreateTestNamespace(t, db, bob.ID)

		_, err := svc.DeleteNamespace(alice.ID, ns.ID)
		testutil.AssertAppMessage(t, err, "FORBIDDEN", "namespace could not be deleted")
	})

	t.Run("cascades", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		keep := testutil.CreateTestNamespace(t, db, user.ID)
		ns := testutil.CreateTestNamespace(t, db, user.ID)
		category := testutil.CreateTestCategory(t, db, ns.ID)
		testutil.CreateTestExpense(t, db, category.ID, "100", fixedNow)
		kept := testutil.CreateTestCategory(t, db, keep.ID)
		testutil.CreateTestExpense(t, db, kept.ID, "200", fixedNow)

		deleted, err := svc.DeleteNamespace(user.ID, ns.ID)
		testutil.AssertNoError(t, err)
		if deleted.ID != ns.ID {
			t.Errorf("expected deleted record %s, got %s", ns.ID, deleted.ID)
		}

		var count int64
		db.Model(&models.Namespace{}).Where("id = ?", ns.ID).Count(&count)
		if count != 0 {
			t.Error("namespace should be gone")
		}
		db.Model(&models.Category{}).Where("namespace_id = ?", ns.ID).Count(&count)
		if count != 0 {
			t.Error("categories should be gone")
		}
		db.Model(&models.Expense{}).Count(&count)
		if count != 1 {
			t.Errorf("only the other namespace's expense should remain, found %d", count)
		}
	})

	t.Run("always_keeps_one", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewNamespaceService(db, newTestValidator())
		user := testutil.CreateTestUser(t, db)
		var ids []string
		for i := 0; i < 3; i++ {
			ids = append(ids, testutil.CreateTestNamespace(t, db, user.ID).ID)
		}

		for i, id := range ids {
			_, err := svc.DeleteNamespace(user.ID, id)
			if i < len(ids)-1 {
				testutil.AssertNoError(t, err)
			} else {
				testutil.AssertAppError(t, err, "INVARIANT_VIOLATION")
			}
		}

		var count int64
		db.Model(&models.Namespace{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected exactly one namespace left, got %d", count)
		}
	})
}

