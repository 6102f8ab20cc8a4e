package entity

import "errors"

var (
	ErrDuplicateName        = errors.New("duplicate name")
	ErrBudgetExceeded       = errors.New("budget exceeded")
	ErrNotFound             = errors.New("not found")
	ErrInvalid              = errors.New("invalid input")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ValidationError is a rejected mutation. Kind is one of the sentinel errors above
// and Message is meant to be shown to the user as is.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func NewValidationError(kind error, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}
