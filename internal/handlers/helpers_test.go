package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gastos/internal/i18n"
	"gastos/internal/middleware"
	"gastos/internal/models"
	"gastos/internal/pagination"
	"gastos/internal/services"
	"gastos/internal/validator"
)

const (
	testUserID      = "0190a4b2-7c3e-7000-8000-000000000001"
	testNamespaceID = "0190a4b2-7c3e-7000-8000-0000000000a1"
	testCategoryID  = "0190a4b2-7c3e-7000-8000-0000000000c1"
	testExpenseID   = "0190a4b2-7c3e-7000-8000-0000000000e1"
)

// --- mock services ---

type mockUserService struct {
	provisionFn            func(email string) (*models.User, error)
	completeRegistrationFn func(email, password string) (*models.User, error)
	authenticateFn         func(email, password string) (*models.User, error)
	getUserByIDFn          func(id string) (*models.User, error)
}

func (m *mockUserService) Provision(email string) (*models.User, error) {
	if m.provisionFn != nil {
		return m.provisionFn(email)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Email: email}, nil
}

func (m *mockUserService) CompleteRegistration(email, password string) (*models.User, error) {
	if m.completeRegistrationFn != nil {
		return m.completeRegistrationFn(email, password)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Email: email, IsCompleted: true}, nil
}

func (m *mockUserService) Authenticate(email, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return &models.User{Base: models.Base{ID: testUserID}, Email: email, IsCompleted: true}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

type mockNamespaceService struct {
	createFn func(userID, name string) (*models.Namespace, error)
	listFn   func(userID string) ([]models.Namespace, error)
	updateFn func(userID, namespaceID string, patch services.NamespacePatch) (*models.Namespace, error)
	deleteFn func(userID, namespaceID string) (*models.Namespace, error)
}

func (m *mockNamespaceService) CreateNamespace(userID, name string) (*models.Namespace, error) {
	if m.createFn != nil {
		return m.createFn(userID, name)
	}
	return &models.Namespace{Base: models.Base{ID: testNamespaceID}, Name: name, UserID: userID}, nil
}

func (m *mockNamespaceService) ListNamespaces(userID string) ([]models.Namespace, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return []models.Namespace{}, nil
}

func (m *mockNamespaceService) UpdateNamespace(userID, namespaceID string, patch services.NamespacePatch) (*models.Namespace, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, namespaceID, patch)
	}
	return &models.Namespace{Base: models.Base{ID: namespaceID}, UserID: userID}, nil
}

func (m *mockNamespaceService) DeleteNamespace(userID, namespaceID string) (*models.Namespace, error) {
	if m.deleteFn != nil {
		return m.deleteFn(userID, namespaceID)
	}
	return &models.Namespace{Base: models.Base{ID: namespaceID}, UserID: userID}, nil
}

type mockCategoryService struct {
	createFn func(userID, namespaceID, name string) (*models.Category, error)
	listFn   func(userID, namespaceID string) ([]models.Category, error)
	updateFn func(userID, namespaceID, categoryID string, patch services.CategoryPatch) (*models.Category, error)
	deleteFn func(userID, namespaceID, categoryID string) (*models.Category, error)
}

func (m *mockCategoryService) CreateCategory(userID, namespaceID, name string) (*models.Category, error) {
	if m.createFn != nil {
		return m.createFn(userID, namespaceID, name)
	}
	return &models.Category{Base: models.Base{ID: testCategoryID}, Name: name, NamespaceID: namespaceID}, nil
}

func (m *mockCategoryService) ListCategories(userID, namespaceID string) ([]models.Category, error) {
	if m.listFn != nil {
		return m.listFn(userID, namespaceID)
	}
	return []models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(userID, namespaceID, categoryID string, patch services.CategoryPatch) (*models.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, namespaceID, categoryID, patch)
	}
	return &models.Category{Base: models.Base{ID: categoryID}, NamespaceID: namespaceID}, nil
}

func (m *mockCategoryService) DeleteCategory(userID, namespaceID, categoryID string) (*models.Category, error) {
	if m.deleteFn != nil {
		return m.deleteFn(userID, namespaceID, categoryID)
	}
	return &models.Category{Base: models.Base{ID: categoryID}, NamespaceID: namespaceID}, nil
}

type mockExpenseService struct {
	createFn func(userID, namespaceID, categoryID string, in services.ExpenseInput) (*models.Expense, error)
	listFn   func(userID, namespaceID, categoryID string, filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	getFn    func(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error)
	updateFn func(userID, namespaceID, categoryID, expenseID string, in services.ExpenseInput) (*models.Expense, error)
	deleteFn func(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error)
}

func (m *mockExpenseService) CreateExpense(userID, namespaceID, categoryID string, in services.ExpenseInput) (*models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(userID, namespaceID, categoryID, in)
	}
	return &models.Expense{Base: models.Base{ID: testExpenseID}, CategoryID: categoryID}, nil
}

func (m *mockExpenseService) ListExpenses(userID, namespaceID, categoryID string, filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.listFn != nil {
		return m.listFn(userID, namespaceID, categoryID, filter, page)
	}
	result := pagination.NewPageResponse([]models.Expense{}, 1, 0, 0)
	return &result, nil
}

func (m *mockExpenseService) GetExpense(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error) {
	if m.getFn != nil {
		return m.getFn(userID, namespaceID, categoryID, expenseID)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, CategoryID: categoryID}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, namespaceID, categoryID, expenseID string, in services.ExpenseInput) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(userID, namespaceID, categoryID, expenseID, in)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, CategoryID: categoryID}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, namespaceID, categoryID, expenseID string) (*models.Expense, error) {
	if m.deleteFn != nil {
		return m.deleteFn(userID, namespaceID, categoryID, expenseID)
	}
	return &models.Expense{Base: models.Base{ID: expenseID}, CategoryID: categoryID}, nil
}

type auditEntry struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID: userID, action: action, resourceType: resourceType, resourceID: resourceID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// newTestRouter returns an engine with the locale middleware installed.
func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(i18n.Middleware(i18n.Default))
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return doLocalizedRequest(r, method, path, body, "")
}

func doLocalizedRequest(r *gin.Engine, method, path, body, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["code"] != code {
		t.Errorf("expected error code %q, got %v", code, result["code"])
	}
	if message != "" && result["message"] != message {
		t.Errorf("expected message %q, got %v", message, result["message"])
	}
}
