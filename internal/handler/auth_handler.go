package handler

import (
	"errors"
	"log"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler sets up the routing dependencies for authentication endpoints
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth-login", h.Login)
	router.POST("/change-password", h.ChangePassword)
}

// Login handles POST /auth-login to authenticate a user within a role
// @Summary      Login user
// @Description  Authenticates a user by email, password and role, returning a token and whether a password change is forced
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth-login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Missing required fields"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, response.Error(err.Error()))
		default:
			log.Println("Login error:", err)
			c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		}
		return
	}

	// Login keeps its historical top-level shape instead of the data envelope
	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"user":                  result.User,
		"token":                 result.Token,
		"requirePasswordChange": result.RequirePasswordChange,
	})
}

// ChangePassword handles POST /change-password
// @Summary      Change password
// @Description  Verifies the current password, enforces the strength policy and clears the first-login flag
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ChangePasswordRequest  true  "Password Change Payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Missing required fields"))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.Error(err.Error()))
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, response.Error(err.Error()))
		default:
			log.Println("Password change error:", err)
			c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, response.Message("Password updated successfully"))
}
