// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "config.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with file path", func(t *testing.T) {
		t.Parallel()

		original := errors.New("some error")
		err := FormatError(original, "config.cue")
		if !errors.Is(err, original) {
			t.Errorf("error should wrap the original, got: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "config.cue: ") {
			t.Errorf("error should start with the file path, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: nil, expected: ""},
		{name: "single element", path: []string{"ui"}, expected: "ui"},
		{name: "nested path", path: []string{"head", "lines"}, expected: "head.lines"},
		{name: "array index", path: []string{"find", "0", "name"}, expected: "find[0].name"},
		{name: "trailing index", path: []string{"items", "0", "values", "1"}, expected: "items[0].values[1]"},
		{name: "numeric first element", path: []string{"0", "a"}, expected: "0.a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "a.cue"); err != nil {
		t.Errorf("at limit: expected nil, got %v", err)
	}

	err := CheckFileSize(make([]byte, 101), 100, "a.cue")
	if err == nil {
		t.Fatal("over limit: expected error")
	}
	for _, want := range []string{"a.cue", "101", "100"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should contain %q", err, want)
		}
	}
}
