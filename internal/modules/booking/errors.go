package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrVehicleUnavailable      = errors.New("vehicle unavailable")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// MissingFieldsError reports which required visible fields of the active
// layout the submission left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
