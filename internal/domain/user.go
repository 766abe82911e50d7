package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleWorker   Role = "worker"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserDisabled UserStatus = "disabled"
)

type User struct {
	ID           string     `json:"id" gorm:"column:id;primaryKey"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	FirstName    string     `json:"first_name" gorm:"column:first_name"`
	LastName     string     `json:"last_name" gorm:"column:last_name"`
	Phone        string     `json:"phone" gorm:"column:phone"`
	Role         Role       `json:"role" gorm:"column:role"`
	Status       UserStatus `json:"status" gorm:"column:status"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty" gorm:"column:last_login"`
}

func (User) TableName() string { return "users" }

// FullName mirrors the customer-name lookup the payment flow re-reads
// from the user document: first+last, falling back to the email local
// part.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		for i, r := range u.Email {
			if r == '@' {
				return u.Email[:i]
			}
		}
		return u.Email
	}
	return name
}
