package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastos/internal/i18n"
	"gastos/internal/models"
	"gastos/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CategoryRequest represents the request payload for creating or updating a
// category. NamespaceID moves the category on update.
type CategoryRequest struct {
	Name        *string `json:"name"`
	NamespaceID *string `json:"namespace_id"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a category in a namespace owned by the authenticated user
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} map[string]interface{} "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	category, err := h.categoryService.CreateCategory(userID, c.Param("namespaceId"), name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionCreateCategory, models.ResourceCategory, category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "namespace_id": category.NamespaceID})

	c.JSON(http.StatusCreated, gin.H{
		"category": category,
		"message":  localize(c, "category created successfully"),
	})
}

// ListCategories handles the retrieval of a namespace's categories
// @Summary     List categories
// @Description Get the categories of a namespace owned by the authenticated user
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Success     200 {object} map[string]interface{} "Categories and a count message"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(userID, c.Param("namespaceId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"message":    localize(c, i18n.FoundCategories, len(categories)),
	})
}

// UpdateCategory handles renaming or moving a category
// @Summary     Update a category
// @Description Rename a category or move it to another namespace owned by the authenticated user
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Param       request body CategoryRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Category updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace or category not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(userID, c.Param("namespaceId"), c.Param("categoryId"),
		services.CategoryPatch{Name: req.Name, NamespaceID: req.NamespaceID})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionUpdateCategory, models.ResourceCategory, category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "namespace_id": category.NamespaceID})

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"message":  localize(c, "category updated successfully"),
	})
}

// DeleteCategory handles the deletion of a category
// @Summary     Delete a category
// @Description Delete a category and its expenses
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       categoryId path string true "Category ID"
// @Success     200 {object} map[string]interface{} "Category deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace or category not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId}/categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.DeleteCategory(userID, c.Param("namespaceId"), c.Param("categoryId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionDeleteCategory, models.ResourceCategory, category.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"message":  localize(c, "category deleted successfully"),
	})
}
