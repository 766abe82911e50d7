package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkerRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByStatus(ctx context.Context, statuses ...domain.BookingStatus) ([]domain.Booking, error) {
	callArgs := make([]any, 0, len(statuses)+1)
	callArgs = append(callArgs, ctx)
	for _, s := range statuses {
		callArgs = append(callArgs, s)
	}
	args := m.Called(callArgs...)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) ListAll(ctx context.Context) ([]domain.Assignment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Assignment), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) TotalAmount(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func newTestService() (*Service, *MockUserRepository, *MockWorkerRepository, *MockBookingRepository, *MockAssignmentRepository, *MockPaymentRepository) {
	mockUsers := new(MockUserRepository)
	mockWorkers := new(MockWorkerRepository)
	mockBookings := new(MockBookingRepository)
	mockAssignments := new(MockAssignmentRepository)
	mockPayments := new(MockPaymentRepository)
	svc := NewService(mockUsers, mockWorkers, mockBookings, mockAssignments, mockPayments, nil)
	return svc, mockUsers, mockWorkers, mockBookings, mockAssignments, mockPayments
}

func TestService_Dashboard_Aggregates(t *testing.T) {
	svc, mockUsers, mockWorkers, mockBookings, _, mockPayments := newTestService()

	now := time.Now().UTC()
	mockUsers.On("List", mock.Anything).Return([]domain.User{
		{ID: "u-1", Role: domain.RoleCustomer, FirstName: "Jane", CreatedAt: now},
		{ID: "u-2", Role: domain.RoleCustomer, FirstName: "Bob", CreatedAt: now},
		{ID: "u-3", Role: domain.RoleAdmin, FirstName: "Root", CreatedAt: now},
	}, nil)
	mockWorkers.On("List", mock.Anything).Return([]domain.Worker{
		{ID: "w-1", Name: "Sam"},
	}, nil)
	// legacy spellings collapse into one bucket
	mockBookings.On("ListAll", mock.Anything).Return([]domain.Booking{
		{ID: "b-1", Status: domain.BookingPending, BookingDate: now, CreatedAt: now},
		{ID: "b-2", Status: domain.BookingStatus("Cancelled"), BookingDate: now, CreatedAt: now},
		{ID: "b-3", Status: domain.BookingStatus("canceled"), BookingDate: now, CreatedAt: now},
	}, nil)
	mockPayments.On("ListAll", mock.Anything).Return([]domain.Payment{
		{ID: "p-1", Amount: 120.50, PaymentDate: now},
		{ID: "p-2", Amount: 79.50, PaymentDate: now},
	}, nil)
	mockPayments.On("TotalAmount", mock.Anything).Return(200.0, nil)

	stats, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalWorkers)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 200.0, stats.TotalPayments)
	assert.Equal(t, 1, stats.StatusBreakdown["pending"])
	assert.Equal(t, 2, stats.StatusBreakdown["cancelled"])
	assert.Len(t, stats.Monthly, 12)
	assert.Equal(t, 3, stats.Monthly[now.Month()-1].Bookings)
	assert.Equal(t, 200.0, stats.Monthly[now.Month()-1].Revenue)
	assert.Equal(t, 8, len(stats.RecentActivity))
}

func TestService_AddWorker_EmailTaken(t *testing.T) {
	svc, _, mockWorkers, _, _, _ := newTestService()

	mockWorkers.On("EmailTaken", mock.Anything, "sam@crew.test", "").Return(true, nil)

	_, err := svc.AddWorker(context.Background(), AddWorkerRequest{
		Name: "Sam", Email: "sam@crew.test", Phone: "021555000",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockWorkers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AddWorker_Success(t *testing.T) {
	svc, _, mockWorkers, _, _, _ := newTestService()

	mockWorkers.On("EmailTaken", mock.Anything, "sam@crew.test", "").Return(false, nil)
	mockWorkers.On("Create", mock.Anything, mock.Anything).Return(nil)

	w, err := svc.AddWorker(context.Background(), AddWorkerRequest{
		Name: "Sam", Email: "sam@crew.test", Phone: "021555000",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, w.ID)
	assert.True(t, w.IsActive)
	mockWorkers.AssertExpectations(t)
}

// A worker editing their own record keeps their email.
func TestService_UpdateWorker_ExcludesSelfFromEmailCheck(t *testing.T) {
	svc, _, mockWorkers, _, _, _ := newTestService()

	mockWorkers.On("EmailTaken", mock.Anything, "sam@crew.test", "w-1").Return(false, nil)
	mockWorkers.On("UpdateFields", mock.Anything, "w-1", mock.Anything).Return(nil)
	mockWorkers.On("GetByID", mock.Anything, "w-1").Return(&domain.Worker{
		ID: "w-1", Name: "Sam", Email: "sam@crew.test",
	}, nil)

	w, err := svc.UpdateWorker(context.Background(), "w-1", UpdateWorkerRequest{
		Name: "Sam", Email: "sam@crew.test", Phone: "021555000",
	})

	assert.NoError(t, err)
	assert.Equal(t, "w-1", w.ID)
	mockWorkers.AssertExpectations(t)
}

func TestService_Board_HydratesAssignments(t *testing.T) {
	svc, _, mockWorkers, mockBookings, mockAssignments, _ := newTestService()

	mockWorkers.On("List", mock.Anything).Return([]domain.Worker{
		{ID: "w-1", Name: "Sam", IsActive: true},
	}, nil)
	mockBookings.On("ListByStatus", mock.Anything, domain.BookingPending, domain.BookingApproved).
		Return([]domain.Booking{{ID: "b-2", Status: domain.BookingPending}}, nil)
	mockAssignments.On("ListAll", mock.Anything).Return([]domain.Assignment{
		{ID: "a-1", BookingID: "b-1", AssignedWorker: "w-1"},
		{ID: "a-2", BookingID: "b-3", AssignedWorker: "w-gone"},
	}, nil)
	mockBookings.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{
		ID: "b-1", CustomerName: "Jane", BookingAddress: "12 Harbour Rd", ServiceType: "Waste Removal",
	}, nil)
	mockBookings.On("GetByID", mock.Anything, "b-3").Return(&domain.Booking{
		ID: "b-3", CustomerName: "Bob", BookingAddress: "4 Mill Ln", ServiceType: "Carpet Cleaning",
	}, nil)

	board, err := svc.Board(context.Background())

	assert.NoError(t, err)
	assert.Len(t, board.Workers, 1)
	assert.Len(t, board.Assignable, 1)
	assert.Len(t, board.Assignments, 2)
	assert.Equal(t, "Sam", board.Assignments[0].WorkerName)
	assert.Equal(t, "12 Harbour Rd", board.Assignments[0].BookingAddress)
	// deleted worker still renders
	assert.Equal(t, "Unknown worker", board.Assignments[1].WorkerName)
}

func TestService_ListAdmins_FiltersByRole(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	mockUsers.On("List", mock.Anything).Return([]domain.User{
		{ID: "u-1", Role: domain.RoleCustomer},
		{ID: "u-2", Role: domain.RoleAdmin},
		{ID: "u-3", Role: domain.RoleAdmin},
	}, nil)

	admins, err := svc.ListAdmins(context.Background())

	assert.NoError(t, err)
	assert.Len(t, admins, 2)
	assert.Equal(t, "u-2", admins[0].ID)
}

func TestService_AddAdmin_EmailTaken(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	mockUsers.On("GetByEmail", mock.Anything, "root@rockwaste.test").
		Return(&domain.User{ID: "u-1", Email: "root@rockwaste.test"}, nil)

	_, err := svc.AddAdmin(context.Background(), AddAdminRequest{
		Email: "root@rockwaste.test", Password: "secret123", FirstName: "Root",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AddAdmin_Success(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	mockUsers.On("GetByEmail", mock.Anything, "ops@rockwaste.test").
		Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin &&
			u.Status == domain.UserActive &&
			u.Email == "ops@rockwaste.test" &&
			u.PasswordHash != "" && u.PasswordHash != "secret123"
	})).Return(nil)

	u, err := svc.AddAdmin(context.Background(), AddAdminRequest{
		Email: "ops@rockwaste.test", Password: "secret123", FirstName: "Ops",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	mockUsers.AssertExpectations(t)
}

func TestService_ToggleAdminStatus_SelfRejected(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	_, err := svc.ToggleAdminStatus(context.Background(), "u-1", "u-1")

	assert.ErrorIs(t, err, ErrValidation)
	mockUsers.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ToggleAdminStatus_NonAdminNotFound(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	mockUsers.On("GetByID", mock.Anything, "u-1").Return(&domain.User{
		ID: "u-1", Role: domain.RoleCustomer, Status: domain.UserActive,
	}, nil)

	_, err := svc.ToggleAdminStatus(context.Background(), "u-1", "u-root")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ToggleAdminStatus_Flips(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	mockUsers.On("GetByID", mock.Anything, "u-2").Return(&domain.User{
		ID: "u-2", Role: domain.RoleAdmin, Status: domain.UserActive,
	}, nil)
	mockUsers.On("UpdateFields", mock.Anything, "u-2", map[string]any{
		"status": domain.UserDisabled,
	}).Return(nil)

	status, err := svc.ToggleAdminStatus(context.Background(), "u-2", "u-root")

	assert.NoError(t, err)
	assert.Equal(t, domain.UserDisabled, status)
	mockUsers.AssertExpectations(t)
}

func TestService_SetUserStatus_Disable(t *testing.T) {
	svc, mockUsers, _, _, _, _ := newTestService()

	mockUsers.On("UpdateFields", mock.Anything, "u-1", map[string]any{
		"status": domain.UserDisabled,
	}).Return(nil)

	err := svc.SetUserStatus(context.Background(), "u-1", domain.UserDisabled)

	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}
