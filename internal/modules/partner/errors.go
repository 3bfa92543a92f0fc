package partner

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("partner not found")
)
