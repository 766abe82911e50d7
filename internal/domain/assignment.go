package domain

import "time"

// Assignment is the join record between a Booking and the Worker
// responsible for it. The parent booking carries denormalized copies of
// AssignedWorker and WorkerStatus; every write here must be mirrored
// there.
type Assignment struct {
	ID               string     `json:"id" gorm:"column:id;primaryKey"`
	BookingID        string     `json:"booking_id" gorm:"column:booking_id;index"`
	AssignedWorker   string     `json:"assigned_worker" gorm:"column:assigned_worker;index"`
	Status           string     `json:"status" gorm:"column:status"`
	WorkerStatus     string     `json:"worker_status" gorm:"column:worker_status"`
	IsFullyCompleted bool       `json:"is_fully_completed" gorm:"column:is_fully_completed"`
	CreatedAt        time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"column:updated_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty" gorm:"column:completed_at"`
}

func (Assignment) TableName() string { return "assignments" }
