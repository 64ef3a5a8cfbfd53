package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing a field
	// the operation cannot proceed without (empty username, e-mail, or
	// password). Uniqueness and format checks are not performed here.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
