package analyses

import "errors"

var (
	// ErrInvalidInput covers bad or missing uploads, empty job descriptions,
	// and documents no text can be extracted from.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExternalService covers failed model calls, timeouts, and responses
	// that do not satisfy the result schema.
	ErrExternalService = errors.New("external service error")

	// ErrNotFound is returned when an analysis is unknown or already expired.
	ErrNotFound = errors.New("not found")
)

const (
	ErrorCodeValidation      = "validation_error"
	ErrorCodeExternalService = "external_service_error"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeInternal        = "internal_error"
)
