package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	w.Email = strings.ToLower(strings.TrimSpace(w.Email))
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	var w domain.Worker
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	var out []domain.Worker
	err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
	return out, err
}

// FindActiveByEmailPhone is the worker login lookup: email + phone must
// both match and the account must be active.
func (r *WorkerRepository) FindActiveByEmailPhone(ctx context.Context, email, phone string) (*domain.Worker, error) {
	var w domain.Worker
	err := r.db.WithContext(ctx).
		Where("email = ? AND phone = ? AND is_active = ?",
			strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(phone), true).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// EmailTaken reports whether another worker already uses the email.
// excludeID allows edits to keep their own address.
func (r *WorkerRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var w domain.Worker
	q := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *WorkerRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Worker{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Worker{}, "id = ?", id).Error
}
