package economics

import (
	"errors"
	"fmt"
)

// ErrInvalidTrade is matched by every *ValidationError via errors.Is.
var ErrInvalidTrade = errors.New("invalid trade")

// ValidationError reports a missing or unusable input field. It is always
// returned to the caller as-is; nothing in this package corrects inputs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trade: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTrade
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
