package services

import "fmt"

// FieldError is a single-field rejection raised by a service when the
// problem is semantic rather than structural (unknown variation, status
// out of the accepted set…). Controllers render it as a 422.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErrf(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}
