package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateFields applies a targeted partial update, the way the original
// store patched individual document fields. updated_at is always bumped.
func (r *BookingRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, "id = ?", id).Error
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).Order("booking_date DESC").Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("booking_date DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListByStatus(ctx context.Context, statuses ...domain.BookingStatus) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("booking_date ASC").
		Find(&out).Error
	return out, err
}

// ListForCustomerDate fetches every booking equal on customer and
// calendar day, regardless of status; the caller decides which statuses
// still block the slot.
func (r *BookingRepository) ListForCustomerDate(ctx context.Context, customerID string, date time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND booking_date = ?", customerID, domain.DateOnly(date)).
		Find(&out).Error
	return out, err
}

// ListPayable returns the customer's bookings that can be paid: price
// set by admin, payment still pending, booking approved or assigned.
func (r *BookingRepository) ListPayable(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND is_price_set = ? AND payment_status = ?",
			customerID, true, domain.PaymentPending).
		Where("status IN ?", []domain.BookingStatus{domain.BookingApproved, domain.BookingAssigned}).
		Order("booking_date ASC").
		Find(&out).Error
	return out, err
}
