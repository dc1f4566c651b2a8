package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by id-addressed operations with no matching record.
var ErrNotFound = errors.New("accommodation not found")

// ValidationError is an invariant violation on create or update. It is never
// swallowed; callers can pick it out of a wrapped chain with errors.As.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
