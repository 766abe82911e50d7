package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	var a domain.Assignment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByBookingID returns the first assignment linked to the booking, or
// nil when none exists. Lookup is equality on booking_id, limit 1; the
// find-or-create contract in the service layer relies on it.
func (r *AssignmentRepository) FindByBookingID(ctx context.Context, bookingID string) (*domain.Assignment, error) {
	var a domain.Assignment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Limit(1).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) ListByBookingID(ctx context.Context, bookingID string) ([]domain.Assignment, error) {
	var out []domain.Assignment
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error) {
	var out []domain.Assignment
	err := r.db.WithContext(ctx).Where("assigned_worker = ?", workerID).Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) ListAll(ctx context.Context) ([]domain.Assignment, error) {
	var out []domain.Assignment
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *AssignmentRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Assignment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Assignment{}, "id = ?", id).Error
}
