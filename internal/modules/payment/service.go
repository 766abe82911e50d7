package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type Service struct {
	bookings BookingRepository
	payments PaymentRepository
	users    UserRepository
}

func NewService(bookings BookingRepository, payments PaymentRepository, users UserRepository) *Service {
	return &Service{bookings: bookings, payments: payments, users: users}
}

// PayableBookings lists the customer's bookings that are ready to pay:
// price set, payment still pending, booking approved or assigned.
func (s *Service) PayableBookings(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookings.ListPayable(ctx, customerID)
}

// MakePayment records a payment for the booking's final price and flips
// the booking to paid. The customer name is re-read from the user record
// rather than trusted from the booking copy.
func (s *Service) MakePayment(ctx context.Context, customerID string, req MakePaymentRequest) (*domain.Payment, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if b.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if !b.IsPriceSet || b.FinalPrice <= 0 {
		return nil, ErrNotPayable
	}

	customerName := b.CustomerName
	if user, uerr := s.users.GetByID(ctx, customerID); uerr == nil {
		customerName = user.FullName()
	}

	bookingID := b.ID
	p := &domain.Payment{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		CustomerName:  customerName,
		Amount:        b.FinalPrice,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Description:   fmt.Sprintf("%s on %s", b.ServiceType, b.BookingDate.Format("2006-01-02")),
		PaymentDate:   time.Now().UTC(),
		Status:        "completed",
		BookingID:     &bookingID,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateFields(ctx, b.ID, map[string]any{
		"payment_status": domain.PaymentPaid,
	}); err != nil {
		return nil, err
	}

	return p, nil
}

// History is the admin ledger, newest first.
func (s *Service) History(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.ListAll(ctx)
}

func (s *Service) CustomerHistory(ctx context.Context, customerID string) ([]domain.Payment, error) {
	return s.payments.ListByCustomer(ctx, customerID)
}
