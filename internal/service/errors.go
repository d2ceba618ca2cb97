package service

import (
	"errors"

	"github.com/jdcruz/rbi-registry/internal/validation"
	"github.com/jdcruz/rbi-registry/models"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrValidationFailed is the sentinel wrapped by every [*ValidationError].
	// Match with errors.Is, then unwrap with errors.As to read the Result.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError carries the per-field validation result for a rejected
// record so the transport layer can render errors beside form fields.
type ValidationError struct {
	Result models.Result
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + validation.Summary(e.Result)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError wraps an invalid result. The caller must ensure
// result.Valid is false.
func NewValidationError(result models.Result) *ValidationError {
	return &ValidationError{Result: result}
}
