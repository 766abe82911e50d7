package worker

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rockwaste/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group gated to the worker role; uid in the
// context is the worker id.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tasks", h.ActiveTasks)
	rg.GET("/tasks/completed", h.CompletedTasks)
	rg.PUT("/tasks/:id/status", h.UpdateStatus)
	rg.POST("/feedback", h.SubmitFeedback)
}

func (h *Handler) ActiveTasks(c *gin.Context) {
	tasks, err := h.service.ActiveTasks(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tasks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) CompletedTasks(c *gin.Context) {
	tasks, err := h.service.CompletedTasks(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load completed tasks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id and worker_status are required")
		return
	}

	err := h.service.UpdateStatus(c.Request.Context(), c.GetString("uid"), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This assignment belongs to another worker")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status update")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id and feedback are required")
		return
	}

	err := h.service.SubmitFeedback(c.Request.Context(), c.GetString("uid"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This booking belongs to another worker")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "feedback is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit feedback")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submitted": true})
}
