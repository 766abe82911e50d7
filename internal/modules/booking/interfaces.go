package booking

import (
	"context"
	"time"

	"rockwaste/internal/domain"
)

// BookingRepository is the bookings collection as the lifecycle manager
// sees it.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	ListForCustomerDate(ctx context.Context, customerID string, date time.Time) ([]domain.Booking, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	FindByBookingID(ctx context.Context, bookingID string) (*domain.Assignment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]domain.Assignment, error)
	ListAll(ctx context.Context) ([]domain.Assignment, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Mailer mirrors notification.Mailer; declared here so the service can
// be tested with a mock.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, customerName string, date time.Time, timeSlot, address, serviceType string)
	SendBookingCancellation(ctx context.Context, to, customerName string, date time.Time, address string)
}
