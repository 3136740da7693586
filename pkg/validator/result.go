package validator

import (
	"errors"
	"fmt"
	"sync"
)

// Result is the outcome of one validation pass. A successful result holds
// the validated value and no reasons; a failed one holds the original value
// and at least one reason. Results are immutable.
//
// Only Success and Failure produce usable results; the zero Result is
// treated as failed, with ErrValidationFailed as its error.
type Result[T any] struct {
	value   T
	reasons Reasons
	ok      bool
	err     *ValidationError
}

// Success wraps a value that passed every check.
func Success[T any](value T) *Result[T] {
	return &Result[T]{value: value, ok: true}
}

// Failure wraps a value together with the reasons it failed.
// Panics with ErrEmptyFailure when reasons is empty.
func Failure[T any](value T, reasons Reasons) *Result[T] {
	if reasons.IsEmpty() {
		panic(ErrEmptyFailure)
	}
	frozen := reasons.Clone()
	return &Result[T]{
		value:   value,
		reasons: frozen,
		err:     &ValidationError{Source: value, Reasons: frozen},
	}
}

// Unwrap returns the validated value, or the zero value and a
// *ValidationError describing every failure.
func (r *Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// MustUnwrap returns the validated value and panics with the
// *ValidationError if validation failed.
func (r *Result[T]) MustUnwrap() T {
	if !r.ok {
		panic(r.Err())
	}
	return r.value
}

// OrNil returns a pointer to the validated value, or nil on failure.
func (r *Result[T]) OrNil() *T {
	if !r.ok {
		return nil
	}
	v := r.value
	return &v
}

// WasSuccessful reports whether the result was built by Success.
func (r *Result[T]) WasSuccessful() bool {
	return r.ok
}

// Source returns the value the pass ran against, whatever the outcome.
func (r *Result[T]) Source() T {
	return r.value
}

// Reasons returns the top-level failure reasons. Empty on success.
func (r *Result[T]) Reasons() Reasons {
	return r.reasons.Clone()
}

// Err returns nil on success and the *ValidationError otherwise.
func (r *Result[T]) Err() error {
	switch {
	case r.ok:
		return nil
	case r.err == nil:
		return ErrValidationFailed
	default:
		return r.err
	}
}

// ValidationError is returned when a failed result is unwrapped.
// The report text is rendered on first use and cached.
type ValidationError struct {
	Source  any
	Reasons Reasons

	once    sync.Once
	message string
}

func (e *ValidationError) Error() string {
	e.once.Do(func() {
		e.message = fmt.Sprintf("%s failed %d validation checks: %s%s",
			Display(e.Source), e.Reasons.Len(), LineSeparator, RenderText(e.Reasons))
	})
	return e.message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Report returns the rendered failure tree line by line.
func (e *ValidationError) Report() []string {
	return Render(e.Reasons)
}

// ExtractValidationError returns the *ValidationError wrapped in err, if any.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}
