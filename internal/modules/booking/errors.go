package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrDuplicateDate     = errors.New("active booking already exists for this date")
	ErrForbidden         = errors.New("not authorized")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrWorkerInactive    = errors.New("worker is not active")
)
