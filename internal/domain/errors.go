package domain

import "errors"

var (
	// ErrInvalidAmount signals a top-up amount that is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrIndexOutOfRange signals a catalog index outside known bounds
	ErrIndexOutOfRange = errors.New("index out of range")
)
