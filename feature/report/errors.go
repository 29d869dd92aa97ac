package report

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks request parameter errors. They are never retried and
// map to a 400 response at the HTTP boundary.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
