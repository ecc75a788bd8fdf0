package parse

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed or out-of-domain user input.
var ErrInvalidInput = errors.New("parse: invalid input")

// invalidf wraps ErrInvalidInput with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}
