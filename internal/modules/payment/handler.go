package payment

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

// RegisterCustomerRoutes go on the customer group, RegisterAdminRoutes
// on the admin group.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/payable", h.PayableBookings)
	rg.POST("/payments", h.MakePayment)
	rg.GET("/payments/my", h.CustomerHistory)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments", h.History)
}

func (h *Handler) PayableBookings(c *gin.Context) {
	list, err := h.service.PayableBookings(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payable bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) MakePayment(c *gin.Context) {
	var req MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "booking_id and payment_method are required")
		return
	}

	p, err := h.service.MakePayment(c.Request.Context(), c.GetString("uid"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to pay for this booking")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusConflict, "ALREADY_PAID", "This booking is already paid")
		case errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "NOT_PAYABLE", "This booking has no price set yet")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) History(c *gin.Context) {
	list, err := h.service.History(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": list})
}

func (h *Handler) CustomerHistory(c *gin.Context) {
	list, err := h.service.CustomerHistory(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": list})
}
