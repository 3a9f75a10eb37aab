package handler

import (
	"errors"
	"log"
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler sets up the routing dependencies for complaint endpoints
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ComplaintHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/complaints", h.ListComplaints)
	router.POST("/complaints", h.CreateComplaint)
	router.PUT("/complaints", h.UpdateComplaint)
	router.DELETE("/complaints/:id", h.DeleteComplaint)
}

// ListComplaints handles GET /complaints with role-based filtering
// @Summary      List complaints
// @Description  Admin receives all complaints, clients their own, fournisseurs those assigned to them; newest first
// @Tags         complaints
// @Produce      json
// @Param        role    query     string  true  "Caller role (admin, client, fournisseur)"
// @Param        userId  query     string  true  "Caller user id"
// @Success      200     {object}  response.Response{data=[]service.ComplaintResponse}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /complaints [get]
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	role := c.Query("role")
	userID := c.Query("userId")

	if role == "" || userID == "" {
		c.JSON(http.StatusBadRequest, response.Error("Missing role or userId"))
		return
	}

	complaints, err := h.complaintService.List(c.Request.Context(), role, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
			return
		}
		log.Println("Complaints list error:", err)
		c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, response.OK(complaints))
}

// CreateComplaint handles POST /complaints
// @Summary      Create a complaint
// @Description  Files a new complaint for a client; status is always forced to pending
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateComplaintRequest  true  "Complaint Payload"
// @Success      200      {object}  response.Response{data=service.ComplaintResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /complaints [post]
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req service.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Missing required fields (title, description, client_id)"))
		return
	}

	complaint, err := h.complaintService.Create(c.Request.Context(), req)
	if err != nil {
		log.Println("Complaint create error:", err)
		c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, response.OK(complaint))
}

// UpdateComplaint handles PUT /complaints for assignment and status moves
// @Summary      Update a complaint
// @Description  Partially updates a complaint; status changes must follow the pending/assigned/resolved lifecycle
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateComplaintRequest  true  "Update Payload"
// @Success      200      {object}  response.Response{data=service.ComplaintResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /complaints [put]
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	var req service.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Missing complaint ID"))
		return
	}

	complaint, err := h.complaintService.Update(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTransition),
			errors.Is(err, service.ErrUnknownFournisseur),
			errors.Is(err, service.ErrMissingFournisseur):
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		case errors.Is(err, service.ErrComplaintNotFound):
			c.JSON(http.StatusNotFound, response.Error(err.Error()))
		default:
			log.Println("Complaint update error:", err)
			c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, response.OK(complaint))
}

// DeleteComplaint handles DELETE /complaints/:id
// @Summary      Delete a complaint
// @Description  Hard deletes a complaint; deleting an already-removed id still succeeds
// @Tags         complaints
// @Produce      json
// @Param        id   path      string  true  "Complaint ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /complaints/{id} [delete]
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.Error("Missing complaint ID"))
		return
	}

	if err := h.complaintService.Delete(c.Request.Context(), id); err != nil {
		log.Println("Complaint delete error:", err)
		c.JSON(http.StatusInternalServerError, response.Error("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, response.Message("Complaint deleted successfully"))
}
