// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"strings"
	"testing"
)

func TestWcCommand_Run(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"fox.txt":   "The quick brown fox\n",
		"utf8.txt":  "Ñoño  x\ny",
		"empty.txt": "",
	}

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "default columns", args: []string{"fox.txt"}, want: "      1       4      20 fox.txt\n"},
		{name: "stdin has no name", stdin: "a b\n", want: "      1       2       4\n"},
		{name: "lines only", args: []string{"-l", "fox.txt"}, want: "      1 fox.txt\n"},
		{name: "chars and bytes", args: []string{"-cm", "utf8.txt"}, want: "      9      11 utf8.txt\n"},
		{name: "words without trailing newline", args: []string{"-lw", "utf8.txt"}, want: "      1       3 utf8.txt\n"},
		{name: "empty", args: []string{"empty.txt"}, want: "      0       0       0 empty.txt\n"},
		{
			name: "total",
			args: []string{"-l", "fox.txt", "utf8.txt"},
			want: "      1 fox.txt\n      1 utf8.txt\n      2 total\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, stdout, _ := newTestContext(t, files)
			hc.Stdin = strings.NewReader(tt.stdin)
			if err := runTool(t, hc, "wcr", tt.args...); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWcCommand_MissingFileStillTotals(t *testing.T) {
	t.Parallel()

	hc, stdout, stderr := newTestContext(t, map[string]string{"a.txt": "x\n"})
	err := runTool(t, hc, "wcr", "-l", "a.txt", "nope.txt")
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
	if got := stdout.String(); got != "      1 a.txt\n      1 total\n" {
		t.Errorf("stdout = %q", got)
	}
	if !strings.Contains(stderr.String(), "wcr: nope.txt:") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
