package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/services"
)

func setupNamespaceRouter(handler *NamespaceHandler) *gin.Engine {
	r := newTestRouter()
	auth := r.Group("/", injectUserID(testUserID))
	auth.POST("/namespaces", handler.CreateNamespace)
	auth.GET("/namespaces", handler.ListNamespaces)
	auth.PUT("/namespaces/:namespaceId", handler.UpdateNamespace)
	auth.DELETE("/namespaces/:namespaceId", handler.DeleteNamespace)
	return r
}

func TestNamespaceHandler_CreateNamespace(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotUser, gotName string
		svc := &mockNamespaceService{
			createFn: func(userID, name string) (*models.Namespace, error) {
				gotUser, gotName = userID, name
				return &models.Namespace{Base: models.Base{ID: testNamespaceID}, Name: name, UserID: userID}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupNamespaceRouter(NewNamespaceHandler(svc, audit))

		rec := doRequest(r, "POST", "/namespaces", `{"name":"Personal"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != testUserID || gotName != "Personal" {
			t.Errorf("unexpected service args %q %q", gotUser, gotName)
		}
		result := parseJSON(t, rec)
		ns := result["namespace"].(map[string]interface{})
		if ns["name"] != "Personal" {
			t.Errorf("expected Personal, got %v", ns["name"])
		}
		if result["message"] != "El espacio fue creado satisfactoriamente" {
			t.Errorf("unexpected message %v", result["message"])
		}
		if len(audit.entries) != 1 || audit.entries[0].resourceID != testNamespaceID {
			t.Errorf("expected one audit entry for the namespace, got %v", audit.entries)
		}
	})

	t.Run("missing name is sent as empty", func(t *testing.T) {
		svc := &mockNamespaceService{
			createFn: func(_, name string) (*models.Namespace, error) {
				if name != "" {
					t.Errorf("expected empty name, got %q", name)
				}
				return nil, apperrors.WithMessage(apperrors.ErrValidation, "namespaces must have a name")
			},
		}
		r := setupNamespaceRouter(NewNamespaceHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/namespaces", `{}`)

		assertError(t, rec, http.StatusBadRequest, "VALIDATION_FAILED", "Los espacios deben tener un nombre")
	})

	t.Run("returns 401 without a user", func(t *testing.T) {
		handler := NewNamespaceHandler(&mockNamespaceService{}, &mockAuditService{})
		r := newTestRouter()
		r.POST("/namespaces", handler.CreateNamespace)

		rec := doRequest(r, "POST", "/namespaces", `{"name":"Personal"}`)

		assertError(t, rec, http.StatusUnauthorized, "UNAUTHORIZED", "Su sesión expiró")
	})
}

func TestNamespaceHandler_ListNamespaces(t *testing.T) {
	tests := []struct {
		name       string
		namespaces []models.Namespace
		lang       string
		want       string
	}{
		{name: "one", namespaces: []models.Namespace{{Name: "Default"}}, want: "Se encontró 1 espacio"},
		{name: "many", namespaces: []models.Namespace{{Name: "Default"}, {Name: "Personal"}}, want: "Se encontraron 2 espacios"},
		{name: "english", namespaces: []models.Namespace{{Name: "Default"}, {Name: "Personal"}}, lang: "en", want: "found 2 namespaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockNamespaceService{
				listFn: func(_ string) ([]models.Namespace, error) { return tt.namespaces, nil },
			}
			r := setupNamespaceRouter(NewNamespaceHandler(svc, &mockAuditService{}))

			rec := doLocalizedRequest(r, "GET", "/namespaces", "", tt.lang)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			result := parseJSON(t, rec)
			if got := len(result["namespaces"].([]interface{})); got != len(tt.namespaces) {
				t.Errorf("expected %d namespaces, got %d", len(tt.namespaces), got)
			}
			if result["message"] != tt.want {
				t.Errorf("expected %q, got %v", tt.want, result["message"])
			}
		})
	}
}

func TestNamespaceHandler_UpdateNamespace(t *testing.T) {
	t.Run("forwards the patch", func(t *testing.T) {
		svc := &mockNamespaceService{
			updateFn: func(_, namespaceID string, patch services.NamespacePatch) (*models.Namespace, error) {
				if patch.Name == nil || *patch.Name != "Household" {
					t.Errorf("expected name patch, got %v", patch.Name)
				}
				return &models.Namespace{Base: models.Base{ID: namespaceID}, Name: *patch.Name}, nil
			},
		}
		r := setupNamespaceRouter(NewNamespaceHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/namespaces/"+testNamespaceID, `{"name":"Household"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := parseJSON(t, rec)["message"]; got != "Espacio actualizado" {
			t.Errorf("unexpected message %v", got)
		}
	})

	t.Run("empty body sends an empty patch", func(t *testing.T) {
		svc := &mockNamespaceService{
			updateFn: func(_, namespaceID string, patch services.NamespacePatch) (*models.Namespace, error) {
				if patch.Name != nil {
					t.Errorf("expected nil name, got %q", *patch.Name)
				}
				return &models.Namespace{Base: models.Base{ID: namespaceID}}, nil
			},
		}
		r := setupNamespaceRouter(NewNamespaceHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/namespaces/"+testNamespaceID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 403 for a foreign namespace", func(t *testing.T) {
		svc := &mockNamespaceService{
			updateFn: func(_, _ string, _ services.NamespacePatch) (*models.Namespace, error) {
				return nil, apperrors.ErrNamespaceNotUpdated
			},
		}
		r := setupNamespaceRouter(NewNamespaceHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/namespaces/"+testNamespaceID, `{"name":"Household"}`)

		assertError(t, rec, http.StatusForbidden, "FORBIDDEN", "El espacio no pudo ser actualizado")
	})
}

func TestNamespaceHandler_DeleteNamespace(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupNamespaceRouter(NewNamespaceHandler(&mockNamespaceService{}, audit))

		rec := doRequest(r, "DELETE", "/namespaces/"+testNamespaceID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := parseJSON(t, rec)["message"]; got != "Espacio borrado" {
			t.Errorf("unexpected message %v", got)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_NAMESPACE" {
			t.Errorf("expected DELETE_NAMESPACE audit entry, got %v", audit.entries)
		}
	})

	t.Run("returns 400 for the last namespace", func(t *testing.T) {
		svc := &mockNamespaceService{
			deleteFn: func(_, _ string) (*models.Namespace, error) {
				return nil, apperrors.ErrLastNamespace
			},
		}
		audit := &mockAuditService{}
		r := setupNamespaceRouter(NewNamespaceHandler(svc, audit))

		rec := doRequest(r, "DELETE", "/namespaces/"+testNamespaceID, "")

		assertError(t, rec, http.StatusBadRequest, "INVARIANT_VIOLATION",
			"El espacio no pudo ser borrado. Debes tener al menos un espacio")
		if len(audit.entries) != 0 {
			t.Error("failed deletes must not be audited")
		}
	})
}
