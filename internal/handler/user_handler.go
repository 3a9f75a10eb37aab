package handler

import (
	"errors"
	"log"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for user-management endpoints
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// The whole management surface is admin-only.
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.DELETE("/users/:id/:role", h.DeleteUser)
		admin.GET("/fournisseurs", h.ListFournisseurs)
	}
}

// ListUsers handles GET /users returning clients and fournisseurs merged
// @Summary      List managed users
// @Description  Retrieves all client and fournisseur accounts tagged with their role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.ManagedUserResponse}
// @Failure      500  {object}  response.Response
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListManagedUsers(c.Request.Context())
	if err != nil {
		log.Println("Users list error:", err)
		c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, response.OK(users))
}

// CreateUser handles POST /users provisioning an account with the default password
// @Summary      Create a managed user
// @Description  Creates a client or fournisseur account with the default password and a forced first-login change
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateUserRequest  true  "Create User Payload"
// @Success      200      {object}  response.Response{data=service.ManagedUserResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Missing required fields"))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		default:
			log.Println("User create error:", err)
			c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, response.OK(user))
}

// DeleteUser handles DELETE /users/:id/:role
// @Summary      Delete a managed user
// @Description  Hard deletes a client or fournisseur account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "User ID"
// @Param        role  path      string  true  "User role (client or fournisseur)"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /users/{id}/{role} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	role := c.Param("role")
	if id == "" || role == "" {
		c.JSON(http.StatusBadRequest, response.Error("Missing user ID or role"))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id, role); err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
			return
		}
		log.Println("User delete error:", err)
		c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, response.Message("User deleted successfully"))
}

// ListFournisseurs handles GET /fournisseurs for the assignment picker
// @Summary      List fournisseurs
// @Description  Retrieves id and email of every fournisseur, used when assigning complaints
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.FournisseurResponse}
// @Failure      500  {object}  response.Response
// @Router       /fournisseurs [get]
func (h *UserHandler) ListFournisseurs(c *gin.Context) {
	fournisseurs, err := h.userService.ListFournisseurs(c.Request.Context())
	if err != nil {
		log.Println("Fournisseurs list error:", err)
		c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, response.OK(fournisseurs))
}
