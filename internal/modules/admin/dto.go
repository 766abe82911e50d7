package admin

import (
	"time"

	"rockwaste/internal/domain"
)

type AddWorkerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type UpdateWorkerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type AddAdminRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type SetWorkerStatusRequest struct {
	BookingID    string `json:"booking_id" binding:"required"`
	WorkerStatus string `json:"worker_status" binding:"required"`
}

type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active disabled"`
}

type DashboardStats struct {
	TotalCustomers  int            `json:"total_customers"`
	TotalWorkers    int            `json:"total_workers"`
	TotalBookings   int            `json:"total_bookings"`
	TotalPayments   float64        `json:"total_payments"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	Monthly         []MonthlyPoint `json:"monthly_performance"`
	RecentActivity  []ActivityItem `json:"recent_activity"`
}

// MonthlyPoint is one month of the current year.
type MonthlyPoint struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type ActivityItem struct {
	Type        string    `json:"type"` // user | booking | payment
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// AssignmentView hydrates an assignment with the names the board shows.
type AssignmentView struct {
	domain.Assignment
	WorkerName     string    `json:"worker_name"`
	CustomerName   string    `json:"customer_name"`
	BookingAddress string    `json:"booking_address"`
	BookingDate    time.Time `json:"booking_date"`
	ServiceType    string    `json:"service_type"`
}

type AssignmentBoard struct {
	Workers     []domain.Worker  `json:"workers"`
	Assignable  []domain.Booking `json:"assignable_bookings"`
	Assignments []AssignmentView `json:"assignments"`
}

type UserDirectory struct {
	Users   []domain.User   `json:"users"`
	Workers []domain.Worker `json:"workers"`
}
