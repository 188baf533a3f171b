package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gastos/internal/i18n"
	"gastos/internal/models"
	"gastos/internal/services"
)

// NamespaceHandler handles namespace-related requests.
type NamespaceHandler struct {
	namespaceService services.NamespaceServicer
	auditService     services.AuditServicer
}

// NewNamespaceHandler creates a new NamespaceHandler.
func NewNamespaceHandler(namespaceService services.NamespaceServicer, auditService services.AuditServicer) *NamespaceHandler {
	return &NamespaceHandler{namespaceService: namespaceService, auditService: auditService}
}

// NamespaceRequest represents the request payload for creating or updating a namespace
type NamespaceRequest struct {
	Name *string `json:"name"`
}

// CreateNamespace handles the creation of a new namespace
// @Summary     Create a namespace
// @Description Create a new namespace for the authenticated user
// @Tags        namespaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body NamespaceRequest true "Namespace details"
// @Success     201 {object} map[string]interface{} "Namespace created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces [post]
func (h *NamespaceHandler) CreateNamespace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NamespaceRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}

	ns, err := h.namespaceService.CreateNamespace(userID, name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionCreateNamespace, models.ResourceNamespace, ns.ID, c.ClientIP(),
		map[string]interface{}{"name": ns.Name})

	c.JSON(http.StatusCreated, gin.H{
		"namespace": ns,
		"message":   localize(c, "namespace created successfully"),
	})
}

// ListNamespaces handles the retrieval of the user's namespaces
// @Summary     List namespaces
// @Description Get every namespace owned by the authenticated user
// @Tags        namespaces
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Namespaces and a count message"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces [get]
func (h *NamespaceHandler) ListNamespaces(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	namespaces, err := h.namespaceService.ListNamespaces(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"namespaces": namespaces,
		"message":    localize(c, i18n.FoundNamespaces, len(namespaces)),
	})
}

// UpdateNamespace handles renaming a namespace
// @Summary     Update a namespace
// @Description Rename a namespace owned by the authenticated user
// @Tags        namespaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Param       request body NamespaceRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Namespace updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId} [put]
func (h *NamespaceHandler) UpdateNamespace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NamespaceRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	ns, err := h.namespaceService.UpdateNamespace(userID, c.Param("namespaceId"), services.NamespacePatch{Name: req.Name})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionUpdateNamespace, models.ResourceNamespace, ns.ID, c.ClientIP(),
		map[string]interface{}{"name": ns.Name})

	c.JSON(http.StatusOK, gin.H{
		"namespace": ns,
		"message":   localize(c, "namespace updated"),
	})
}

// DeleteNamespace handles the deletion of a namespace
// @Summary     Delete a namespace
// @Description Delete a namespace with its categories and expenses. The last namespace cannot be deleted.
// @Tags        namespaces
// @Produce     json
// @Security    BearerAuth
// @Param       namespaceId path string true "Namespace ID"
// @Success     200 {object} map[string]interface{} "Namespace deleted"
// @Failure     400 {object} ErrorResponse "Last namespace"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Namespace not owned"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /namespaces/{namespaceId} [delete]
func (h *NamespaceHandler) DeleteNamespace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ns, err := h.namespaceService.DeleteNamespace(userID, c.Param("namespaceId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, models.ActionDeleteNamespace, models.ResourceNamespace, ns.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"namespace": ns,
		"message":   localize(c, "namespace deleted"),
	})
}
