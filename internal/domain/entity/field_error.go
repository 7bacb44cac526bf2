package entity

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError reports a single input field that failed domain validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func newFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// IsFieldError reports whether err carries a FieldError.
func IsFieldError(err error) bool {
	var fieldErr *FieldError

	return errors.As(err, &fieldErr)
}
