package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/middleware"
	"github.com/vantagevc/dealflow-backend/internal/service"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticates a user and returns a JWT token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} common.APIResponse{data=service.LoginResponse}
// @Failure 401 {object} common.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrUserInactive) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Incorrect email or password", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	common.SuccessResponse(c, resp)
}

// Register handles POST /api/v1/auth/register
// @Summary Register
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Account"
// @Success 201 {object} common.APIResponse{data=domain.UserResponse}
// @Failure 409 {object} common.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserAlreadyExists):
			common.ErrorResponse(c, http.StatusConflict, "Email already registered", nil)
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid role", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed", err)
		}
		return
	}

	common.CreatedResponse(c, user)
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Failure 401 {object} common.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	common.SuccessResponse(c, user)
}
