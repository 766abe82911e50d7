package booking

import "time"

type CreateBookingRequest struct {
	CustomerID     string    `json:"-"`
	BookingDate    time.Time `json:"booking_date" validate:"required"`
	PreferredTime  string    `json:"preferred_time" validate:"required"`
	BookingAddress string    `json:"booking_address" validate:"required"`
	ServiceType    string    `json:"service_type" validate:"required"`
	EstimatedPrice float64   `json:"estimated_price" validate:"gte=0"`
	BinSize        string    `json:"bin_size"`
	CarpetSize     string    `json:"carpet_size"`
	SpecialRequest string    `json:"special_request"`
}

type AssignWorkerRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	WorkerID  string `json:"worker_id" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetPriceRequest struct {
	FinalPrice float64 `json:"final_price" binding:"required,gt=0"`
}

type UpdateWorkerStatusRequest struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
	BookingID    string `json:"booking_id" binding:"required"`
	WorkerStatus string `json:"worker_status" binding:"required"`
}

type ReconcileReport struct {
	Checked  int      `json:"checked"`
	Repaired int      `json:"repaired"`
	Dangling []string `json:"dangling,omitempty"`
}
