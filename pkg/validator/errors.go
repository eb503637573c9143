package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilValidator is raised (as a panic) when a field is registered with a nil validator.
	// That is a programming error, not bad input.
	ErrNilValidator = errors.New("validator: nil field validator")
)
