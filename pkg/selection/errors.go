// SPDX-License-Identifier: MPL-2.0

package selection

import (
	"errors"
	"fmt"
)

// ErrFormat is the sentinel error wrapped by FormatError.
var ErrFormat = errors.New("invalid format")

// FormatError is returned when selector or offset text cannot be parsed.
// It wraps ErrFormat for errors.Is() compatibility.
type FormatError struct {
	// Input is the offending token (or the whole text when no single token is at fault).
	Input string
	// Reason is a short human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrFormat, e.Input, e.Reason)
}

// Unwrap returns ErrFormat so callers can use errors.Is for programmatic detection.
func (e *FormatError) Unwrap() error { return ErrFormat }

func formatErr(input, reason string) *FormatError {
	return &FormatError{Input: input, Reason: reason}
}
