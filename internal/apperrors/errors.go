package apperrors

import "errors"

var (
	// ErrNotFound is returned by repositories when a requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint in the store rejects an insert.
	ErrDuplicate = errors.New("duplicate key")
)

// ValidationError describes a schema-level rejection of a field value. Handlers
// translate it into a 400 regardless of whether it was raised before or during
// the store operation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation builds a ValidationError for the given field.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
