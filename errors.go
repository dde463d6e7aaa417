package mikroconf

import "errors"

// ErrInvalidValue is the bare rejection for validators that carry no
// message of their own. Option diagnostics drop the detail suffix and
// Rule failures substitute the rule's fallback Message when they see
// it.
var ErrInvalidValue = errors.New("invalid value")

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError is the only failure raised by Validate (and by Get
// when auto-validation is enabled). Status classifies it as a
// client-input error, suitable for mapping to an HTTP 4xx response by
// embedding applications.
type ValidationError struct {
	Message string
	Status  int
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Status: 400}
}
