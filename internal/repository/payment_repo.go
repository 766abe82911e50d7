package repository

import (
	"context"

	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).Order("payment_date DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("payment_date DESC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) TotalAmount(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
