package booking

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSlotUnavailable    = errors.New("time slot is no longer available")
	ErrDurationNotOffered = errors.New("session duration not offered by this service")
	ErrForbidden          = errors.New("not allowed to access this resource")
)

// InvalidInputError reports a numeric or format problem with caller input.
type InvalidInputError struct {
	Code    string
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Code, e.Field, e.Message)
}

func NewInvalidInputError(field, msg string) error {
	return &InvalidInputError{
		Code:    "invalidInput",
		Field:   field,
		Message: msg,
	}
}

// IsInvalidInput reports whether err (or anything it wraps) is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
