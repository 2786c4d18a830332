package component

import "errors"

// ErrCancelled is returned when the operator declines the final confirmation.
var ErrCancelled = errors.New("cancelled by user")

// ValidationError describes a rejected name. Collectors show Message and ask again.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
