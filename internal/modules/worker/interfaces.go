package worker

import (
	"context"

	"rockwaste/internal/domain"
)

type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// StatusWriter is the dual-write path into the booking lifecycle; both
// progress updates and feedback go through it so the assignment and the
// booking never diverge on the happy path.
type StatusWriter interface {
	UpdateWorkerStatus(ctx context.Context, assignmentID, bookingID, status string) error
	SubmitFeedback(ctx context.Context, bookingID, feedback string) error
}
