package domain

import "time"

// Worker lives in its own collection and is referenced by id from
// bookings and assignments. Deleting a worker does not cascade; dangling
// references are tolerated.
type Worker struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey"`
	Name      string    `json:"name" gorm:"column:name"`
	Phone     string    `json:"phone" gorm:"column:phone"`
	Email     string    `json:"email" gorm:"column:email;index"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Worker) TableName() string { return "workers" }
