package ngramidx

import "errors"

var (
	// ErrInvalidN is returned when the n-gram length is not positive.
	ErrInvalidN = errors.New("n-gram length must be positive")

	// ErrCorruptSnapshot is returned when a deserialized snapshot fails
	// structural validation.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
