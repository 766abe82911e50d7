package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

type Service struct {
	users       UserRepository
	workers     WorkerRepository
	bookings    BookingRepository
	assignments AssignmentRepository
	payments    PaymentRepository
	lifecycle   BookingLifecycle
}

func NewService(
	users UserRepository,
	workers WorkerRepository,
	bookings BookingRepository,
	assignments AssignmentRepository,
	payments PaymentRepository,
	lifecycle BookingLifecycle,
) *Service {
	return &Service{
		users:       users,
		workers:     workers,
		bookings:    bookings,
		assignments: assignments,
		payments:    payments,
		lifecycle:   lifecycle,
	}
}

// -------------------- Dashboard --------------------

// Dashboard aggregates whole collections in memory, the way the original
// store had to. Acceptable at this data size; revisit if bookings grow
// past a few tens of thousands.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	totalPaid, err := s.payments.TotalAmount(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalPayments:   totalPaid,
		TotalWorkers:    len(workers),
		TotalBookings:   len(bookings),
		StatusBreakdown: map[string]int{},
	}

	for _, u := range users {
		if u.Role == domain.RoleCustomer {
			stats.TotalCustomers++
		}
	}

	year := time.Now().UTC().Year()
	monthly := make([]MonthlyPoint, 12)
	for i := range monthly {
		monthly[i].Month = time.Month(i + 1).String()[:3]
	}

	for _, b := range bookings {
		stats.StatusBreakdown[string(domain.NormalizeStatus(string(b.Status)))]++
		if b.BookingDate.Year() == year {
			monthly[b.BookingDate.Month()-1].Bookings++
		}
	}
	for _, p := range payments {
		if p.PaymentDate.Year() == year {
			monthly[p.PaymentDate.Month()-1].Revenue += p.Amount
		}
	}
	stats.Monthly = monthly

	stats.RecentActivity = recentActivity(users, bookings, payments)
	return stats, nil
}

func recentActivity(users []domain.User, bookings []domain.Booking, payments []domain.Payment) []ActivityItem {
	var items []ActivityItem
	for _, u := range users {
		items = append(items, ActivityItem{
			Type:        "user",
			Description: fmt.Sprintf("%s registered", u.FullName()),
			Timestamp:   u.CreatedAt,
		})
	}
	for _, b := range bookings {
		items = append(items, ActivityItem{
			Type:        "booking",
			Description: fmt.Sprintf("%s booked %s", b.CustomerName, b.ServiceType),
			Timestamp:   b.CreatedAt,
		})
	}
	for _, p := range payments {
		items = append(items, ActivityItem{
			Type:        "payment",
			Description: fmt.Sprintf("%s paid %.2f", p.CustomerName, p.Amount),
			Timestamp:   p.PaymentDate,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > 8 {
		items = items[:8]
	}
	return items
}

// -------------------- Workers --------------------

func (s *Service) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return s.workers.List(ctx)
}

func (s *Service) AddWorker(ctx context.Context, req AddWorkerRequest) (*domain.Worker, error) {
	taken, err := s.workers.EmailTaken(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	w := &domain.Worker{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.workers.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) UpdateWorker(ctx context.Context, id string, req UpdateWorkerRequest) (*domain.Worker, error) {
	taken, err := s.workers.EmailTaken(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	fields := map[string]any{
		"name":  strings.TrimSpace(req.Name),
		"email": strings.ToLower(strings.TrimSpace(req.Email)),
		"phone": strings.TrimSpace(req.Phone),
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	err = s.workers.UpdateFields(ctx, id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.workers.GetByID(ctx, id)
}

func (s *Service) SetWorkerActive(ctx context.Context, id string, active bool) error {
	err := s.workers.UpdateFields(ctx, id, map[string]any{"is_active": active})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteWorker removes the worker record only. Assignments keep their
// worker id; the board shows "Unknown worker" for those.
func (s *Service) DeleteWorker(ctx context.Context, id string) error {
	return s.workers.Delete(ctx, id)
}

// -------------------- Users --------------------

func (s *Service) ListUsers(ctx context.Context) (*UserDirectory, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, err
	}
	return &UserDirectory{Users: users, Workers: workers}, nil
}

func (s *Service) SetUserStatus(ctx context.Context, id string, status domain.UserStatus) error {
	err := s.users.UpdateFields(ctx, id, map[string]any{"status": status})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// -------------------- Admin accounts --------------------

func (s *Service) ListAdmins(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	admins := make([]domain.User, 0)
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			admins = append(admins, u)
		}
	}
	return admins, nil
}

func (s *Service) AddAdmin(ctx context.Context, req AddAdminRequest) (*domain.User, error) {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ToggleAdminStatus flips an admin account between active and disabled.
// An admin cannot lock themselves out.
func (s *Service) ToggleAdminStatus(ctx context.Context, id, actorID string) (domain.UserStatus, error) {
	if id == actorID {
		return "", ErrValidation
	}

	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if u.Role != domain.RoleAdmin {
		return "", ErrNotFound
	}

	next := domain.UserDisabled
	if u.Status == domain.UserDisabled {
		next = domain.UserActive
	}
	if err := s.users.UpdateFields(ctx, id, map[string]any{"status": next}); err != nil {
		return "", err
	}
	return next, nil
}

// -------------------- Bookings --------------------

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// -------------------- Assignments --------------------

// Board hydrates the assignment list with worker names and booking
// details and pairs it with the assignable bookings and the active
// worker pool.
func (s *Service) Board(ctx context.Context) (*AssignmentBoard, error) {
	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, err
	}
	assignable, err := s.bookings.ListByStatus(ctx, domain.BookingPending, domain.BookingApproved)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	workerNames := make(map[string]string, len(workers))
	for _, w := range workers {
		workerNames[w.ID] = w.Name
	}

	views := make([]AssignmentView, 0, len(assignments))
	for _, a := range assignments {
		v := AssignmentView{Assignment: a, WorkerName: workerNames[a.AssignedWorker]}
		if v.WorkerName == "" {
			v.WorkerName = "Unknown worker"
		}
		if b, err := s.bookings.GetByID(ctx, a.BookingID); err == nil {
			v.CustomerName = b.CustomerName
			v.BookingAddress = b.BookingAddress
			v.BookingDate = b.BookingDate
			v.ServiceType = b.ServiceType
		}
		views = append(views, v)
	}

	return &AssignmentBoard{
		Workers:     workers,
		Assignable:  assignable,
		Assignments: views,
	}, nil
}
