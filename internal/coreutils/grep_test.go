// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/zhang722/command-line-go/internal/issue"
)

var grepFiles = map[string]string{
	"fox.txt":     "The quick brown fox\njumps over\nthe lazy dog\n",
	"bustle.txt":  "The bustle in a house\nThe morning after death\n",
	"d/a.txt":     "dog\n",
	"d/sub/b.txt": "cat\ndog\n",
}

func TestGrepCommand_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "case sensitive", args: []string{"the", "fox.txt"}, want: "the lazy dog\n"},
		{name: "ignore case", args: []string{"-i", "the", "fox.txt"}, want: "The quick brown fox\nthe lazy dog\n"},
		{name: "invert", args: []string{"-v", "the", "fox.txt"}, want: "The quick brown fox\njumps over\n"},
		{name: "line numbers", args: []string{"-n", "lazy", "fox.txt"}, want: "3:the lazy dog\n"},
		{name: "count", args: []string{"-ci", "the", "fox.txt", "bustle.txt"}, want: "fox.txt:2\nbustle.txt:2\n"},
		{name: "files with matches", args: []string{"-l", "The", "fox.txt", "bustle.txt"}, want: "fox.txt\nbustle.txt\n"},
		{name: "prefix for many files", args: []string{"dog", "fox.txt", "bustle.txt"}, want: "fox.txt:the lazy dog\n"},
		{name: "no filename", args: []string{"-h", "dog", "fox.txt", "bustle.txt"}, want: "the lazy dog\n"},
		{name: "with filename", args: []string{"-H", "dog", "fox.txt"}, want: "fox.txt:the lazy dog\n"},
		{name: "stdin label", args: []string{"-H", "x"}, stdin: "x\ny\n", want: "(standard input):x\n"},
		{name: "perl lookahead", args: []string{"-P", `quick(?= brown)`, "fox.txt"}, want: "The quick brown fox\n"},
		{name: "recursive", args: []string{"-r", "dog", "d"}, want: "d/a.txt:dog\nd/sub/b.txt:dog\n"},
		{name: "recursive dot", args: []string{"-rn", "cat", "."}, want: "./d/sub/b.txt:1:cat\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, stdout, _ := newTestContext(t, grepFiles)
			hc.Stdin = strings.NewReader(tt.stdin)
			if err := runTool(t, hc, "grepr", tt.args...); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGrepCommand_ExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "no match", args: []string{"zebra", "fox.txt"}, wantCode: 1},
		{name: "directory without -r", args: []string{"dog", "d", "fox.txt"}, wantCode: 2, wantStderr: "grepr: d: is a directory\n"},
		{name: "missing file", args: []string{"dog", "nope.txt"}, wantCode: 2, wantStderr: "grepr: nope.txt: file does not exist\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, _, stderr := newTestContext(t, grepFiles)
			err := runTool(t, hc, "grepr", tt.args...)
			if got := ExitCode(err); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d (err = %v)", got, tt.wantCode, err)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestGrepCommand_InvalidPattern(t *testing.T) {
	t.Parallel()

	hc, _, _ := newTestContext(t, grepFiles)
	// RE2 has no lookarounds.
	err := runTool(t, hc, "grepr", `quick(?= brown)`, "fox.txt")
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue != issue.InvalidPatternId {
		t.Fatalf("error = %v, want an invalid-pattern ActionableError", err)
	}
}

func TestGrepCommand_Highlight(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := newTestContext(t, grepFiles)
	hc.Color = true
	if err := runTool(t, hc, "grepr", "lazy", "fox.txt"); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	got := stdout.String()
	if !strings.Contains(got, "\x1b[") || !strings.HasPrefix(got, "the ") || !strings.HasSuffix(got, " dog\n") {
		t.Errorf("stdout = %q, want the match wrapped in escape codes", got)
	}
}

func TestMatcher_Spans(t *testing.T) {
	t.Parallel()

	for _, perl := range []bool{false, true} {
		m, err := compileMatcher("a+", true, perl)
		if err != nil {
			t.Fatalf("compileMatcher(perl=%v) returned error: %v", perl, err)
		}
		spans, err := m.Spans("ñAa-ña")
		if err != nil {
			t.Fatalf("Spans() returned error: %v", err)
		}
		want := [][2]int{{2, 4}, {7, 8}}
		if !slices.Equal(spans, want) {
			t.Errorf("Spans(perl=%v) = %v, want %v", perl, spans, want)
		}
	}
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	brackets := func(a ...any) string { return "[" + a[0].(string) + "]" }
	if got := highlight("abcabc", [][2]int{{1, 2}, {4, 6}}, brackets); got != "a[b]ca[bc]" {
		t.Errorf("highlight() = %q", got)
	}
	if got := highlight("abc", nil, brackets); got != "abc" {
		t.Errorf("highlight() without spans = %q", got)
	}
}
