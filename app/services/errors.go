package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/josys/shop/app/repositories"
)

var (
	// ErrNotFound means the id does not resolve to a row.
	ErrNotFound = repositories.ErrNotFound
	// ErrConflict means the store rejected a write on a unique or foreign key.
	ErrConflict = repositories.ErrConflict
)

// ValidationError rejects an input before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func NotNull(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " cannot be null"}
}

// TooLong rejects a value that does not fit its column.
func TooLong(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is too long"}
}

// firstInvalid turns validator output into a ValidationError for the first
// failing field in declaration order.
func firstInvalid(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	if fe.Tag() == "required" {
		return Required(fe.Field())
	}
	return TooLong(fe.Field())
}
