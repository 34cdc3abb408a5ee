// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"
	"testing"
)

const testSchema = `
#Config: {
	head?: {
		lines?: int & >0
	}
	ui?: {
		color?: "auto" | "always" | "never"
	}
}
`

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty file", data: ""},
		{name: "valid values", data: "head: lines: 5\nui: color: \"never\"\n"},
		{name: "out of range", data: "head: lines: 0\n", wantErr: "head.lines"},
		{name: "bad enum", data: "ui: color: \"sometimes\"\n", wantErr: "ui.color"},
		{name: "unknown field", data: "tail: lines: 3\n", wantErr: "tail"},
		{name: "syntax error", data: "head: {", wantErr: "test.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Validate([]byte(testSchema), []byte(tt.data), "#Config",
				WithFilename("test.cue"), WithConcrete(false))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FileTooLarge(t *testing.T) {
	t.Parallel()

	_, err := Validate([]byte(testSchema), []byte("head: lines: 5\n"), "#Config", WithMaxFileSize(4))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestValidate_MissingDefinition(t *testing.T) {
	t.Parallel()

	_, err := Validate([]byte(testSchema), nil, "#Nope")
	if err == nil || !strings.Contains(err.Error(), "#Nope") {
		t.Fatalf("expected missing definition error, got %v", err)
	}
}

func TestDecodeMap(t *testing.T) {
	t.Parallel()

	m, err := DecodeMap([]byte(testSchema), []byte("head: lines: 7\n"), "#Config", WithConcrete(false))
	if err != nil {
		t.Fatalf("DecodeMap() error = %v", err)
	}
	head, ok := m["head"].(map[string]any)
	if !ok {
		t.Fatalf("m[head] = %#v, want a map", m["head"])
	}
	if fmt.Sprint(head["lines"]) != "7" {
		t.Errorf("head.lines = %#v, want 7", head["lines"])
	}
}
