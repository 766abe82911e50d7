package payment

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("not authorized")
	ErrNotPayable  = errors.New("booking is not payable")
	ErrAlreadyPaid = errors.New("booking is already paid")
)
