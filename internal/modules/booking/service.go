package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"rockwaste/internal/domain"
)

// Service owns the bookings and assignments collections and every
// transition between their statuses. All role checks happen in the
// handlers; the service enforces ownership and state invariants.
type Service struct {
	bookings    BookingRepository
	assignments AssignmentRepository
	workers     WorkerRepository
	users       UserRepository
	mailer      Mailer
}

func NewService(
	bookings BookingRepository,
	assignments AssignmentRepository,
	workers WorkerRepository,
	users UserRepository,
	mailer Mailer,
) *Service {
	return &Service{
		bookings:    bookings,
		assignments: assignments,
		workers:     workers,
		users:       users,
		mailer:      mailer,
	}
}

// HasActiveBookingForDate reports whether the customer already holds a
// pending, approved or assigned booking on that calendar day. Status
// comparison is case-insensitive via normalization.
func (s *Service) HasActiveBookingForDate(ctx context.Context, customerID string, date time.Time) (bool, error) {
	existing, err := s.bookings.ListForCustomerDate(ctx, customerID, date)
	if err != nil {
		return false, err
	}
	for _, b := range existing {
		if domain.NormalizeStatus(string(b.Status)).IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.CustomerID == "" || strings.TrimSpace(req.BookingAddress) == "" ||
		strings.TrimSpace(req.ServiceType) == "" || req.BookingDate.IsZero() {
		return nil, ErrValidation
	}

	active, err := s.HasActiveBookingForDate(ctx, req.CustomerID, req.BookingDate)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrDuplicateDate
	}

	customerName := "Customer"
	customerEmail := ""
	if user, err := s.users.GetByID(ctx, req.CustomerID); err == nil {
		customerName = user.FullName()
		customerEmail = user.Email
	}

	now := time.Now().UTC()
	b := &domain.Booking{
		ID:             uuid.New().String(),
		CustomerID:     req.CustomerID,
		CustomerName:   customerName,
		BookingAddress: strings.TrimSpace(req.BookingAddress),
		BookingDate:    domain.DateOnly(req.BookingDate),
		PreferredTime:  req.PreferredTime,
		ServiceType:    req.ServiceType,
		BinSize:        req.BinSize,
		CarpetSize:     req.CarpetSize,
		SpecialRequest: req.SpecialRequest,
		EstimatedPrice: req.EstimatedPrice,
		FinalPrice:     0,
		IsPriceSet:     false,
		PaymentStatus:  domain.PaymentPending,
		Status:         domain.BookingPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// The partial unique index on (customer_id, booking_date) closes
		// the window two concurrent creates can slip through between the
		// pre-check and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateDate
		}
		return nil, err
	}

	if customerEmail != "" {
		go s.mailer.SendBookingConfirmation(context.WithoutCancel(ctx),
			customerEmail, customerName, b.BookingDate, b.PreferredTime, b.BookingAddress, b.ServiceType)
	}

	return b, nil
}

// CancelBooking is customer-initiated and only the owning customer may
// cancel; terminal bookings stay as they are.
func (s *Service) CancelBooking(ctx context.Context, bookingID, customerID string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if b.CustomerID != customerID {
		return ErrForbidden
	}

	current := domain.NormalizeStatus(string(b.Status))
	if !domain.CanTransition(current, domain.BookingCancelled) {
		return ErrInvalidTransition
	}

	if err := s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"status": domain.BookingCancelled,
	}); err != nil {
		return err
	}

	if user, uerr := s.users.GetByID(ctx, b.CustomerID); uerr == nil {
		go s.mailer.SendBookingCancellation(context.WithoutCancel(ctx),
			user.Email, b.CustomerName, b.BookingDate, b.BookingAddress)
	}

	return nil
}

// SetStatus is the admin manual override. The raw value is normalized
// before the transition check so legacy spellings behave.
func (s *Service) SetStatus(ctx context.Context, bookingID, rawStatus string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	target := domain.NormalizeStatus(rawStatus)
	current := domain.NormalizeStatus(string(b.Status))
	if !domain.CanTransition(current, target) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"status": target,
	}); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) SetPrice(ctx context.Context, bookingID string, finalPrice float64) error {
	if finalPrice <= 0 {
		return ErrValidation
	}

	err := s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"final_price":  finalPrice,
		"is_price_set": true,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// AssignWorker moves the booking to assigned and links the worker
// through the assignments collection. Idempotent per booking: an
// existing assignment is updated in place, never duplicated.
func (s *Service) AssignWorker(ctx context.Context, bookingID, workerID string) (*domain.Assignment, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	current := domain.NormalizeStatus(string(b.Status))
	if current != domain.BookingAssigned && !domain.CanTransition(current, domain.BookingAssigned) {
		return nil, ErrInvalidTransition
	}

	w, err := s.workers.GetByID(ctx, workerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !w.IsActive {
		return nil, ErrWorkerInactive
	}

	if err := s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"assigned_worker": workerID,
		"worker_status":   domain.WorkerStatusPending,
		"status":          domain.BookingAssigned,
	}); err != nil {
		return nil, err
	}

	return s.findOrCreateAssignment(ctx, bookingID, workerID)
}

// findOrCreateAssignment is the second guard of the lifecycle: lookup by
// booking id, first match, limit 1; update in place or create fresh with
// WorkerStatus Pending.
func (s *Service) findOrCreateAssignment(ctx context.Context, bookingID, workerID string) (*domain.Assignment, error) {
	existing, err := s.assignments.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.assignments.UpdateFields(ctx, existing.ID, map[string]any{
			"assigned_worker": workerID,
			"status":          string(domain.BookingAssigned),
			"worker_status":   domain.WorkerStatusPending,
		}); err != nil {
			return nil, err
		}
		return s.assignments.GetByID(ctx, existing.ID)
	}

	now := time.Now().UTC()
	a := &domain.Assignment{
		ID:             uuid.New().String(),
		BookingID:      bookingID,
		AssignedWorker: workerID,
		Status:         string(domain.BookingAssigned),
		WorkerStatus:   domain.WorkerStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.assignments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateWorkerStatus dual-writes the worker-reported progress to the
// assignment and the booking's denormalized copy. The two writes are
// sequential, not transactional; ReconcileAssignments repairs drift.
func (s *Service) UpdateWorkerStatus(ctx context.Context, assignmentID, bookingID, status string) error {
	if strings.TrimSpace(status) == "" {
		return ErrValidation
	}

	err := s.assignments.UpdateFields(ctx, assignmentID, map[string]any{
		"worker_status": status,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"worker_status": status,
	})
}

// SubmitFeedback records free-text worker feedback as the worker status
// on the booking and every assignment linked to it.
func (s *Service) SubmitFeedback(ctx context.Context, bookingID, feedback string) error {
	if strings.TrimSpace(feedback) == "" {
		return ErrValidation
	}

	err := s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"worker_status": feedback,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	linked, err := s.assignments.ListByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	for _, a := range linked {
		if err := s.assignments.UpdateFields(ctx, a.ID, map[string]any{
			"worker_status": feedback,
		}); err != nil {
			return err
		}
	}
	return nil
}

// CompleteAssignment is the admin terminal action: the assignment gets
// its completion flag, the booking moves to completed.
func (s *Service) CompleteAssignment(ctx context.Context, assignmentID, bookingID string) error {
	a, err := s.assignments.GetByID(ctx, assignmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if a.BookingID != bookingID {
		return ErrValidation
	}

	now := time.Now().UTC()
	if err := s.assignments.UpdateFields(ctx, assignmentID, map[string]any{
		"is_fully_completed": true,
		"completed_at":       now,
	}); err != nil {
		return err
	}

	return s.bookings.UpdateFields(ctx, bookingID, map[string]any{
		"status":        domain.BookingCompleted,
		"worker_status": domain.WorkerStatusCompleted,
	})
}

// DeleteAssignment removes the assignment and regresses the booking to
// approved with its worker fields cleared.
func (s *Service) DeleteAssignment(ctx context.Context, assignmentID string) error {
	a, err := s.assignments.GetByID(ctx, assignmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if a.BookingID != "" {
		if err := s.bookings.UpdateFields(ctx, a.BookingID, map[string]any{
			"assigned_worker": nil,
			"worker_status":   nil,
			"status":          domain.BookingApproved,
		}); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return s.assignments.Delete(ctx, assignmentID)
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID string) error {
	return s.bookings.Delete(ctx, bookingID)
}

func (s *Service) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

// ReconcileAssignments walks every assignment and repairs the booking
// side where the denormalized fields drifted apart; the assignment is
// treated as the authoritative writer. Bookings that no longer exist
// are reported as dangling, not repaired.
func (s *Service) ReconcileAssignments(ctx context.Context) (*ReconcileReport, error) {
	all, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{}
	for _, a := range all {
		report.Checked++

		b, err := s.bookings.GetByID(ctx, a.BookingID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			report.Dangling = append(report.Dangling, a.ID)
			continue
		}
		if err != nil {
			return nil, err
		}

		fields := map[string]any{}
		if b.AssignedWorker == nil || *b.AssignedWorker != a.AssignedWorker {
			fields["assigned_worker"] = a.AssignedWorker
		}
		if b.WorkerStatus == nil || *b.WorkerStatus != a.WorkerStatus {
			fields["worker_status"] = a.WorkerStatus
		}
		if a.IsFullyCompleted && domain.NormalizeStatus(string(b.Status)) != domain.BookingCompleted {
			fields["status"] = domain.BookingCompleted
		}

		if len(fields) == 0 {
			continue
		}
		if err := s.bookings.UpdateFields(ctx, b.ID, fields); err != nil {
			return nil, err
		}
		report.Repaired++
	}

	return report, nil
}
