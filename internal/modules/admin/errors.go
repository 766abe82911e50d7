package admin

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already in use")
)
