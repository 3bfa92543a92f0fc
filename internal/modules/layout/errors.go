package layout

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("layout not found")
	ErrDefaultConflict = errors.New("another layout is already the default")
	ErrSessionNotFound = errors.New("builder session not found")
)
