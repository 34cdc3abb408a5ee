// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
)

// ErrCommandNotFound is wrapped by Registry.Run for unknown names.
var ErrCommandNotFound = errors.New("command not found")

// StatusError reports a non-zero exit status whose diagnostics, if any, have
// already been written to stderr. Callers exit with Code and print nothing.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps err to a process exit status: 0 for nil, Code for a
// StatusError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 1
}
