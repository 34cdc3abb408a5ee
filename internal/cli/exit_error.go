// SPDX-License-Identifier: MPL-2.0

package cli

import "fmt"

// ExitError records the exit status of a tool whose diagnostics have already
// been printed. RunE handlers store it on the App instead of returning it so
// that fang does not print the message a second time.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
