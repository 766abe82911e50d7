package auth

import "rockwaste/internal/domain"

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// WorkerLoginRequest authenticates against the workers collection:
// email plus phone, no password.
type WorkerLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
	Role  string       `json:"role"`
}

type WorkerLoginResult struct {
	Token  string         `json:"token"`
	Worker *domain.Worker `json:"worker"`
}
