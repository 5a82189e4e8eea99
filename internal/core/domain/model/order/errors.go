package order

import "errors"

// Sentinel errors for classifying domain failures with errors.Is.
var (
	// ErrOrderValidation marks business-rule violations found while
	// validating a candidate order. Recoverable; callers map it to a
	// client-facing rejection.
	ErrOrderValidation = errors.New("order validation failed")

	// ErrIllegalStatusTransition marks an attempt to move an order through
	// an undefined status transition. Indicates caller misuse rather than
	// bad input.
	ErrIllegalStatusTransition = errors.New("illegal order status transition")
)

// ValidationError carries the human-readable message for a business-rule
// violation. The message texts are part of the observable contract.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrOrderValidation
}

// IllegalStateError reports an invalid status-machine operation, such as
// advancing a finished order or an order without a status.
type IllegalStateError struct {
	Message string
}

// NewIllegalStateError creates an IllegalStateError with the given message.
func NewIllegalStateError(message string) *IllegalStateError {
	return &IllegalStateError{Message: message}
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalStatusTransition
}
