package worker

import (
	"time"

	"rockwaste/internal/domain"
)

// Task is an assignment hydrated with the booking details the worker
// needs on site.
type Task struct {
	domain.Assignment
	CustomerName   string    `json:"customer_name"`
	BookingAddress string    `json:"booking_address"`
	BookingDate    time.Time `json:"booking_date"`
	PreferredTime  string    `json:"preferred_time"`
	ServiceType    string    `json:"service_type"`
	BinSize        string    `json:"bin_size,omitempty"`
	CarpetSize     string    `json:"carpet_size,omitempty"`
	SpecialRequest string    `json:"special_request,omitempty"`
}

type UpdateStatusRequest struct {
	BookingID    string `json:"booking_id" binding:"required"`
	WorkerStatus string `json:"worker_status" binding:"required"`
}

type FeedbackRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Feedback  string `json:"feedback" binding:"required"`
}
