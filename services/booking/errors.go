package booking

import (
	"errors"
	"fmt"
)

// ConflictError reports a reservation attempt that lost the race for a slot.
// It is always recoverable: the caller refreshes availability and re-selects.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "slotTaken",
		Message: msg,
	}
}

// ValidationError reports missing or malformed booking input, rejected
// before the store is reached.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "invalidInput",
		Message: msg,
	}
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
