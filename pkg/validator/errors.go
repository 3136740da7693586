package validator

import "errors"

var (
	// ErrValidationFailed is matched by every *ValidationError via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrEmptyRequirement is the panic value when a check is declared without requirement text.
	ErrEmptyRequirement = errors.New("validator: requirement text must not be empty")

	// ErrAlreadyFinalized is the panic value when a builder is finalized more than once.
	ErrAlreadyFinalized = errors.New("validator: builder has already been finalized")

	// ErrEmptyFailure is the panic value when a failed result is built without reasons.
	ErrEmptyFailure = errors.New("validator: failure result requires at least one reason")
)

// ErrInvalidConfig is returned when Config holds an unusable value.
var ErrInvalidConfig = errors.New("validator: invalid configuration")
