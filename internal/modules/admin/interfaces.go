package admin

import (
	"context"

	"rockwaste/internal/domain"
	"rockwaste/internal/modules/booking"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type WorkerRepository interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, statuses ...domain.BookingStatus) ([]domain.Booking, error)
}

type AssignmentRepository interface {
	ListAll(ctx context.Context) ([]domain.Assignment, error)
}

type PaymentRepository interface {
	ListAll(ctx context.Context) ([]domain.Payment, error)
	TotalAmount(ctx context.Context) (float64, error)
}

// BookingLifecycle is the slice of the booking service the admin surface
// drives; keeping it an interface lets the handlers be tested without
// the full lifecycle wiring.
type BookingLifecycle interface {
	SetStatus(ctx context.Context, bookingID, rawStatus string) (*domain.Booking, error)
	SetPrice(ctx context.Context, bookingID string, finalPrice float64) error
	AssignWorker(ctx context.Context, bookingID, workerID string) (*domain.Assignment, error)
	UpdateWorkerStatus(ctx context.Context, assignmentID, bookingID, status string) error
	CompleteAssignment(ctx context.Context, assignmentID, bookingID string) error
	DeleteAssignment(ctx context.Context, assignmentID string) error
	DeleteBooking(ctx context.Context, bookingID string) error
	ReconcileAssignments(ctx context.Context) (*booking.ReconcileReport, error)
}
