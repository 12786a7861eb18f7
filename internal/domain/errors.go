package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when a permit selection fails validation.
// Every validation failure in this package wraps it, so callers can test
// with errors.Is while still surfacing the specific message.
var ErrInvalidSelection = errors.New("invalid selection")

func invalidSelectionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSelection, fmt.Sprintf(format, args...))
}
