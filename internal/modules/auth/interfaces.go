package auth

import (
	"context"

	"rockwaste/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

type WorkerRepository interface {
	FindActiveByEmailPhone(ctx context.Context, email, phone string) (*domain.Worker, error)
}

type jwtService interface {
	GenerateToken(uid, role, name string) (string, error)
}
