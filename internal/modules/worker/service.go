package worker

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"
)

type Service struct {
	assignments AssignmentRepository
	bookings    BookingRepository
	status      StatusWriter
}

func NewService(assignments AssignmentRepository, bookings BookingRepository, status StatusWriter) *Service {
	return &Service{assignments: assignments, bookings: bookings, status: status}
}

// ActiveTasks returns the worker's open assignments joined with their
// bookings. Fully completed assignments and assignments whose booking
// has disappeared are skipped.
func (s *Service) ActiveTasks(ctx context.Context, workerID string) ([]Task, error) {
	all, err := s.assignments.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(all))
	for _, a := range all {
		if a.IsFullyCompleted {
			continue
		}
		b, err := s.bookings.GetByID(ctx, a.BookingID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, Task{
			Assignment:     a,
			CustomerName:   b.CustomerName,
			BookingAddress: b.BookingAddress,
			BookingDate:    b.BookingDate,
			PreferredTime:  b.PreferredTime,
			ServiceType:    b.ServiceType,
			BinSize:        b.BinSize,
			CarpetSize:     b.CarpetSize,
			SpecialRequest: b.SpecialRequest,
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].BookingDate.Before(tasks[j].BookingDate)
	})
	return tasks, nil
}

// CompletedTasks lists the worker's finished assignments, most recent
// completion first.
func (s *Service) CompletedTasks(ctx context.Context, workerID string) ([]Task, error) {
	all, err := s.assignments.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0)
	for _, a := range all {
		if !a.IsFullyCompleted {
			continue
		}
		t := Task{Assignment: a}
		if b, err := s.bookings.GetByID(ctx, a.BookingID); err == nil {
			t.CustomerName = b.CustomerName
			t.BookingAddress = b.BookingAddress
			t.BookingDate = b.BookingDate
			t.ServiceType = b.ServiceType
		}
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		ti, tj := tasks[i].CompletedAt, tasks[j].CompletedAt
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})
	return tasks, nil
}

// UpdateStatus lets the worker report progress on their own assignment.
// Ownership is checked here; the dual write happens in the lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, workerID, assignmentID string, req UpdateStatusRequest) error {
	if strings.TrimSpace(req.WorkerStatus) == "" {
		return ErrValidation
	}

	a, err := s.assignments.GetByID(ctx, assignmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if a.AssignedWorker != workerID {
		return ErrForbidden
	}
	if a.BookingID != req.BookingID {
		return ErrValidation
	}

	return s.status.UpdateWorkerStatus(ctx, assignmentID, req.BookingID, req.WorkerStatus)
}

// SubmitFeedback records free-text feedback against the worker's own
// booking.
func (s *Service) SubmitFeedback(ctx context.Context, workerID string, req FeedbackRequest) error {
	if strings.TrimSpace(req.Feedback) == "" {
		return ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if b.AssignedWorker == nil || *b.AssignedWorker != workerID {
		return ErrForbidden
	}

	return s.status.SubmitFeedback(ctx, req.BookingID, req.Feedback)
}
