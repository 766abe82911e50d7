package payment

import (
	"context"

	"rockwaste/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListPayable(ctx context.Context, customerID string) ([]domain.Booking, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListAll(ctx context.Context) ([]domain.Payment, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
