// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError rewrites a CUE error as "<file>: <path>: <message>", one line
// per underlying error. Non-CUE errors are prefixed with the file name only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(cueErrors))
	for _, e := range cueErrors {
		pathStr := formatPath(errors.Path(e))
		msg := e.Error()

		// CUE repeats the path at the front of some messages.
		if pathStr != "" {
			if rest, ok := strings.CutPrefix(msg, pathStr); ok {
				msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			}
			lines = append(lines, pathStr+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath joins CUE path elements, rendering numeric elements as indices:
// ["find", "names", "0"] becomes "find.names[0]".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		if i > 0 && isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize fails when data is larger than maxSize.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}
