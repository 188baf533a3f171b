package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "gastos/internal/errors"
	"gastos/internal/models"
	"gastos/internal/services"
	"gastos/internal/token"
)

// AuthHandler handles registration, login and user provisioning.
type AuthHandler struct {
	userService  services.UserServicer
	tokens       *token.Service
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokens *token.Service, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, auditService: auditService}
}

// CredentialsRequest represents the register and login payload
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProvisionRequest represents the admin provisioning payload
type ProvisionRequest struct {
	Email string `json:"email"`
}

// TokenResponse represents the authentication response with token
type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Register completes the registration of a provisioned user
// @Summary     Complete registration
// @Description Set the password of a pre-provisioned user and receive a token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CredentialsRequest true "Email and password"
// @Success     200 {object} TokenResponse "Registration completed"
// @Failure     400 {object} ErrorResponse "Invalid password or already completed"
// @Failure     403 {object} ErrorResponse "No pending user with that email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.CompleteRegistration(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tok, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(user.ID, models.ActionCompleteRegistration, models.ResourceUser, user.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, TokenResponse{
		Token:   tok,
		Message: localize(c, "registration completed successfully"),
	})
}

// Login authenticates a user
// @Summary     Login
// @Description Authenticate with email and password and receive a token
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CredentialsRequest true "Email and password"
// @Success     200 {object} TokenResponse "Login successful"
// @Failure     400 {object} ErrorResponse "Invalid email or password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tok, err := h.tokens.Issue(user.ID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:   tok,
		Message: localize(c, "login successful"),
	})
}

// Provision creates a pending user
// @Summary     Provision a user
// @Description Create a pending user that can later complete registration
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body ProvisionRequest true "Email of the new user"
// @Success     201 {object} map[string]interface{} "User provisioned"
// @Failure     400 {object} ErrorResponse "Invalid email"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Email already exists"
// @Failure     503 {object} ErrorResponse "Admin endpoints disabled"
// @Router      /admin/users [post]
func (h *AuthHandler) Provision(c *gin.Context) {
	var req ProvisionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.Provision(req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(user.ID, models.ActionProvisionUser, models.ResourceUser, user.ID, c.ClientIP(),
		map[string]interface{}{"email": user.Email})

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"message": localize(c, "user provisioned successfully"),
	})
}

// GetProfile returns the authenticated user
// @Summary     Current user
// @Description Get the user the bearer token belongs to
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "User"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/me [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
