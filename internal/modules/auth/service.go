package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type Service struct {
	users   UserRepository
	workers WorkerRepository
	jwt     jwtService
}

func NewService(users UserRepository, workers WorkerRepository, jwt jwtService) *Service {
	return &Service{users: users, workers: workers, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.RoleCustomer,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role), u.FullName())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u, Role: string(u.Role)}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Status == domain.UserDisabled {
		return nil, ErrAccountDisabled
	}

	now := time.Now().UTC()
	// best effort, login proceeds even if the timestamp write fails
	_ = s.users.UpdateFields(ctx, u.ID, map[string]any{"last_login": now})

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role), u.FullName())
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: u, Role: string(u.Role)}, nil
}

// WorkerLogin authenticates field staff against the workers collection;
// inactive workers cannot log in.
func (s *Service) WorkerLogin(ctx context.Context, req WorkerLoginRequest) (*WorkerLoginResult, error) {
	w, err := s.workers.FindActiveByEmailPhone(ctx, req.Email, req.Phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(w.ID, string(domain.RoleWorker), w.Name)
	if err != nil {
		return nil, err
	}
	return &WorkerLoginResult{Token: token, Worker: w}, nil
}
