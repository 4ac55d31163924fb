package seqs

import "errors"

var (
	// ErrInvalidRange is returned when a range minimum is not below its maximum.
	ErrInvalidRange = errors.New("maximum values must be greater than minimum values")
	// ErrInvalidCount is returned for a negative draw count.
	ErrInvalidCount = errors.New("count must be non-negative")
	// ErrInfeasibleCount is returned when more unique values are requested than the range holds.
	ErrInfeasibleCount = errors.New("not enough unique values in range")
)
