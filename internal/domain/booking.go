package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingApproved   BookingStatus = "approved"
	BookingAssigned   BookingStatus = "assigned"
	BookingInProgress BookingStatus = "in-progress"
	BookingReadingBPS BookingStatus = "reading-bps"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingRejected   BookingStatus = "rejected"
)

type PaymentState string

const (
	PaymentPending PaymentState = "pending"
	PaymentPaid    PaymentState = "paid"
	PaymentFailed  PaymentState = "failed"
)

// ActiveStatuses are the states in which a booking still blocks the
// customer's date slot.
var ActiveStatuses = []BookingStatus{BookingPending, BookingApproved, BookingAssigned}

// NormalizeStatus folds the spellings that accumulated in the legacy
// dataset ("In Progress", "canceled", "done", ...) into the canonical
// lowercase form. Unknown values come back lowercased but otherwise
// untouched.
func NormalizeStatus(raw string) BookingStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "in progress", "inprogress", "in-progress":
		return BookingInProgress
	case "reading-bps", "readingbps", "reading bps":
		return BookingReadingBPS
	case "cancelled", "canceled":
		return BookingCancelled
	case "completed", "done":
		return BookingCompleted
	case "":
		return BookingPending
	default:
		return BookingStatus(s)
	}
}

// IsTerminal reports whether no further transition may leave the status.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingCompleted, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// CanTransition implements the canonical transition table. in-progress
// and reading-bps exist for reporting only and are never transition
// targets here.
func CanTransition(from, to BookingStatus) bool {
	if from.IsTerminal() {
		return false
	}
	switch to {
	case BookingCancelled, BookingRejected:
		return true
	case BookingApproved:
		return from == BookingPending || from == BookingAssigned
	case BookingAssigned:
		return from == BookingPending || from == BookingApproved
	case BookingCompleted:
		return from == BookingAssigned
	default:
		return false
	}
}

// WorkerStatus values reported by workers are free text; these are the
// values the UI knows how to style. Anything else is accepted and
// rendered with default styling.
const (
	WorkerStatusPending    = "Pending"
	WorkerStatusInProgress = "In Progress"
	WorkerStatusAttending  = "Attending"
	WorkerStatusCompleted  = "Completed"
	WorkerStatusCancelled  = "Cancelled"
)

func KnownWorkerStatus(s string) bool {
	switch s {
	case WorkerStatusPending, WorkerStatusInProgress, WorkerStatusAttending,
		WorkerStatusCompleted, WorkerStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID             string        `json:"id" gorm:"column:id;primaryKey"`
	CustomerID     string        `json:"customer_id" gorm:"column:customer_id;index"`
	CustomerName   string        `json:"customer_name" gorm:"column:customer_name"`
	BookingAddress string        `json:"booking_address" gorm:"column:booking_address"`
	BookingDate    time.Time     `json:"booking_date" gorm:"column:booking_date"`
	PreferredTime  string        `json:"preferred_time" gorm:"column:preferred_time"`
	ServiceType    string        `json:"service_type" gorm:"column:service_type"`
	BinSize        string        `json:"bin_size,omitempty" gorm:"column:bin_size"`
	CarpetSize     string        `json:"carpet_size,omitempty" gorm:"column:carpet_size"`
	SpecialRequest string        `json:"special_request,omitempty" gorm:"column:special_request;type:text"`
	EstimatedPrice float64       `json:"estimated_price" gorm:"column:estimated_price"`
	FinalPrice     float64       `json:"final_price" gorm:"column:final_price"`
	IsPriceSet     bool          `json:"is_price_set" gorm:"column:is_price_set"`
	PaymentStatus  PaymentState  `json:"payment_status" gorm:"column:payment_status"`
	Status         BookingStatus `json:"status" gorm:"column:status;index"`
	AssignedWorker *string       `json:"assigned_worker,omitempty" gorm:"column:assigned_worker"`
	WorkerStatus   *string       `json:"worker_status,omitempty" gorm:"column:worker_status"`
	CreatedAt      time.Time     `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"column:updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// DateOnly truncates a timestamp to its calendar day in UTC; the
// duplicate-date guard compares bookings at day granularity.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
