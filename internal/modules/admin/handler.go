package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rockwaste/internal/domain"
	"rockwaste/internal/modules/booking"
	"rockwaste/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already gated to the admin role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)

	rg.GET("/workers", h.ListWorkers)
	rg.POST("/workers", h.AddWorker)
	rg.PUT("/workers/:id", h.UpdateWorker)
	rg.DELETE("/workers/:id", h.DeleteWorker)

	rg.GET("/admins", h.ListAdmins)
	rg.POST("/admins", h.AddAdmin)
	rg.PUT("/admins/:id/status", h.ToggleAdminStatus)

	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/:id/status", h.SetUserStatus)
	rg.DELETE("/users/:id", h.DeleteUser)

	rg.GET("/bookings", h.ListBookings)
	rg.PUT("/bookings/:id/status", h.SetBookingStatus)
	rg.PUT("/bookings/:id/price", h.SetBookingPrice)
	rg.DELETE("/bookings/:id", h.DeleteBooking)

	rg.GET("/assignments/board", h.Board)
	rg.POST("/assignments", h.AssignWorker)
	rg.POST("/assignments/:id/complete", h.CompleteAssignment)
	rg.PUT("/assignments/:id/worker-status", h.SetWorkerStatus)
	rg.DELETE("/assignments/:id", h.DeleteAssignment)
	rg.POST("/assignments/reconcile", h.Reconcile)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListWorkers(c *gin.Context) {
	workers, err := h.service.ListWorkers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load workers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"workers": workers})
}

func (h *Handler) AddWorker(c *gin.Context) {
	var req AddWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name, email and phone are required")
		return
	}

	w, err := h.service.AddWorker(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "A worker with this email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add worker")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"worker": w})
}

func (h *Handler) UpdateWorker(c *gin.Context) {
	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "name, email and phone are required")
		return
	}

	w, err := h.service.UpdateWorker(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "A worker with this email already exists")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update worker")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"worker": w})
}

func (h *Handler) DeleteWorker(c *gin.Context) {
	if err := h.service.DeleteWorker(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete worker")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListUsers(c *gin.Context) {
	dir, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, dir)
}

func (h *Handler) SetUserStatus(c *gin.Context) {
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be active or disabled")
		return
	}

	err := h.service.SetUserStatus(c.Request.Context(), c.Param("id"), domain.UserStatus(req.Status))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load admins")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

func (h *Handler) AddAdmin(c *gin.Context) {
	var req AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "email, password and first_name are required")
		return
	}

	u, err := h.service.AddAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "An account with this email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add admin")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"admin": u})
}

func (h *Handler) ToggleAdminStatus(c *gin.Context) {
	status, err := h.service.ToggleAdminStatus(c.Request.Context(), c.Param("id"), c.GetString("uid"))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "You cannot disable your own account")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update admin")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}

func (h *Handler) ListBookings(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) SetBookingStatus(c *gin.Context) {
	var req booking.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	b, err := h.service.lifecycle.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, booking.ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking cannot move to this status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) SetBookingPrice(c *gin.Context) {
	var req booking.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "final_price must be greater than zero")
		return
	}

	err := h.service.lifecycle.SetPrice(c.Request.Context(), c.Param("id"), req.FinalPrice)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, booking.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "final_price must be greater than zero")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to set price")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"price_set": true})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.lifecycle.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Board(c *gin.Context) {
	board, err := h.service.Board(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load assignment board")
		return
	}
	response.Success(c, http.StatusOK, board)
}

func (h *Handler) AssignWorker(c *gin.Context) {
	var req booking.AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id and worker_id are required")
		return
	}

	a, err := h.service.lifecycle.AssignWorker(c.Request.Context(), req.BookingID, req.WorkerID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or worker not found")
		case errors.Is(err, booking.ErrWorkerInactive):
			response.Error(c, http.StatusConflict, "WORKER_INACTIVE", "Worker is not active")
		case errors.Is(err, booking.ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking cannot be assigned in its current status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign worker")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) CompleteAssignment(c *gin.Context) {
	var req struct {
		BookingID string `json:"booking_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id is required")
		return
	}

	err := h.service.lifecycle.CompleteAssignment(c.Request.Context(), c.Param("id"), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		case errors.Is(err, booking.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Assignment does not belong to this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete assignment")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"completed": true})
}

func (h *Handler) SetWorkerStatus(c *gin.Context) {
	var req SetWorkerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id and worker_status are required")
		return
	}

	err := h.service.lifecycle.UpdateWorkerStatus(c.Request.Context(), c.Param("id"), req.BookingID, req.WorkerStatus)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
		case errors.Is(err, booking.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "worker_status must not be empty")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update worker status")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"worker_status": req.WorkerStatus})
}

func (h *Handler) DeleteAssignment(c *gin.Context) {
	err := h.service.lifecycle.DeleteAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Assignment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete assignment")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Reconcile(c *gin.Context) {
	report, err := h.service.lifecycle.ReconcileAssignments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reconcile assignments")
		return
	}
	response.Success(c, http.StatusOK, report)
}
