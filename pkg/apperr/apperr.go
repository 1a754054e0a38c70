// Package apperr defines the error taxonomy shared by services, repositories
// and controllers. Controllers map these onto HTTP status codes; nothing below
// the controller layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers bad admin credentials and every token failure:
	// missing, malformed, tampered, wrong key, expired. Callers get no detail
	// about which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreUnavailable means the document store could not be reached or
	// failed mid-operation. Never retried.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError reports a required-field violation, naming the offending field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// Invalid builds a FieldError for the named field.
func Invalid(field string) error {
	return &FieldError{Field: field}
}

// Store wraps a store-layer failure so errors.Is(err, ErrStoreUnavailable)
// holds while the driver error stays visible in logs.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
