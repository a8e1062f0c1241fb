package models

import "errors"

// Domain error kinds raised by the service layer. Handlers translate these
// into HTTP responses: ErrNotFound -> 404, ErrAlreadyExists -> 400,
// ErrOrderStatus -> 406. Everything else is a 500.
var (
	ErrNotFound      = errors.New("not found in database")
	ErrAlreadyExists = errors.New("already exists")
	ErrOrderStatus   = errors.New("order status conflict")
)
