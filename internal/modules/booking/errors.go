package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("booking not found")
	ErrForbidden = errors.New("booking belongs to another user")
)

// ValidationError reports the first invalid form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
