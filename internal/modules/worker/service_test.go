package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockStatusWriter struct {
	mock.Mock
}

func (m *MockStatusWriter) UpdateWorkerStatus(ctx context.Context, assignmentID, bookingID, status string) error {
	args := m.Called(ctx, assignmentID, bookingID, status)
	return args.Error(0)
}

func (m *MockStatusWriter) SubmitFeedback(ctx context.Context, bookingID, feedback string) error {
	args := m.Called(ctx, bookingID, feedback)
	return args.Error(0)
}

func TestService_ActiveTasks_SkipsCompletedAndDangling(t *testing.T) {
	mockAssignments := new(MockAssignmentRepository)
	mockBookings := new(MockBookingRepository)
	svc := NewService(mockAssignments, mockBookings, new(MockStatusWriter))

	mockAssignments.On("ListByWorker", mock.Anything, "w-1").Return([]domain.Assignment{
		{ID: "a-1", BookingID: "b-1", AssignedWorker: "w-1"},
		{ID: "a-2", BookingID: "b-2", AssignedWorker: "w-1", IsFullyCompleted: true},
		{ID: "a-3", BookingID: "b-gone", AssignedWorker: "w-1"},
	}, nil)
	mockBookings.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{
		ID: "b-1", CustomerName: "Jane", BookingAddress: "12 Harbour Rd",
		BookingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		ServiceType: "Waste Removal",
	}, nil)
	mockBookings.On("GetByID", mock.Anything, "b-gone").Return(nil, gorm.ErrRecordNotFound)

	tasks, err := svc.ActiveTasks(context.Background(), "w-1")

	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "a-1", tasks[0].ID)
	assert.Equal(t, "Jane", tasks[0].CustomerName)
	mockBookings.AssertNotCalled(t, "GetByID", mock.Anything, "b-2")
}

func TestService_CompletedTasks_NewestFirst(t *testing.T) {
	mockAssignments := new(MockAssignmentRepository)
	mockBookings := new(MockBookingRepository)
	svc := NewService(mockAssignments, mockBookings, new(MockStatusWriter))

	older := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mockAssignments.On("ListByWorker", mock.Anything, "w-1").Return([]domain.Assignment{
		{ID: "a-old", BookingID: "b-1", AssignedWorker: "w-1", IsFullyCompleted: true, CompletedAt: &older},
		{ID: "a-new", BookingID: "b-2", AssignedWorker: "w-1", IsFullyCompleted: true, CompletedAt: &newer},
		{ID: "a-open", BookingID: "b-3", AssignedWorker: "w-1"},
	}, nil)
	mockBookings.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{ID: "b-1"}, nil)
	mockBookings.On("GetByID", mock.Anything, "b-2").Return(&domain.Booking{ID: "b-2"}, nil)

	tasks, err := svc.CompletedTasks(context.Background(), "w-1")

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "a-new", tasks[0].ID)
	assert.Equal(t, "a-old", tasks[1].ID)
}

func TestService_UpdateStatus_ForeignAssignment(t *testing.T) {
	mockAssignments := new(MockAssignmentRepository)
	mockStatus := new(MockStatusWriter)
	svc := NewService(mockAssignments, new(MockBookingRepository), mockStatus)

	mockAssignments.On("GetByID", mock.Anything, "a-1").Return(&domain.Assignment{
		ID: "a-1", BookingID: "b-1", AssignedWorker: "someone-else",
	}, nil)

	err := svc.UpdateStatus(context.Background(), "w-1", "a-1", UpdateStatusRequest{
		BookingID: "b-1", WorkerStatus: "Attending",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockStatus.AssertNotCalled(t, "UpdateWorkerStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_Success(t *testing.T) {
	mockAssignments := new(MockAssignmentRepository)
	mockStatus := new(MockStatusWriter)
	svc := NewService(mockAssignments, new(MockBookingRepository), mockStatus)

	mockAssignments.On("GetByID", mock.Anything, "a-1").Return(&domain.Assignment{
		ID: "a-1", BookingID: "b-1", AssignedWorker: "w-1",
	}, nil)
	mockStatus.On("UpdateWorkerStatus", mock.Anything, "a-1", "b-1", "Attending").Return(nil)

	err := svc.UpdateStatus(context.Background(), "w-1", "a-1", UpdateStatusRequest{
		BookingID: "b-1", WorkerStatus: "Attending",
	})

	assert.NoError(t, err)
	mockStatus.AssertExpectations(t)
}

func TestService_SubmitFeedback_ForeignBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockStatus := new(MockStatusWriter)
	svc := NewService(new(MockAssignmentRepository), mockBookings, mockStatus)

	other := "someone-else"
	mockBookings.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{
		ID: "b-1", AssignedWorker: &other,
	}, nil)

	err := svc.SubmitFeedback(context.Background(), "w-1", FeedbackRequest{
		BookingID: "b-1", Feedback: "Gate locked, could not access bins",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockStatus.AssertNotCalled(t, "SubmitFeedback", mock.Anything, mock.Anything, mock.Anything)
}
