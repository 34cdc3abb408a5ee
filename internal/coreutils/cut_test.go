// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"strings"
	"testing"

	"github.com/zhang722/command-line-go/internal/issue"
	"github.com/zhang722/command-line-go/pkg/selection"
)

func TestCutCommand_Run(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"books.tsv": "Author\tYear\tTitle\nÉmile Zola\t1865\tLa Confession de Claude\n",
		"books.csv": "Author,Year,Title\n\"Hugo, Victor\",1862,Les Misérables\n\nlast,1,x\n",
		"quotes.tsv": "say \"hi\"\tx\n\"hi\" there\ty\n",
		"quoted.txt": "a\"b\"c\n",
		"utf8.txt":  "Ñoño\n",
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "fields tab", args: []string{"-f", "1,3", "books.tsv"}, want: "Author\tTitle\nÉmile Zola\tLa Confession de Claude\n"},
		{name: "field order kept", args: []string{"-f", "3,1", "books.tsv"}, want: "Title\tAuthor\nLa Confession de Claude\tÉmile Zola\n"},
		{name: "field range", args: []string{"-f", "2-3", "books.tsv"}, want: "Year\tTitle\n1865\tLa Confession de Claude\n"},
		{name: "fields past the end", args: []string{"-f", "5", "books.tsv"}, want: "\n\n"},
		{
			name: "quotes are plain text in commas",
			args: []string{"-d", ",", "-f", "1,2", "books.csv"},
			want: "Author,Year\n\"Hugo, Victor\"\n\nlast,1\n",
		},
		{name: "quotes inside tab field", args: []string{"-f", "1", "quotes.tsv"}, want: "say \"hi\"\n\"hi\" there\n"},
		{name: "field after quoted field", args: []string{"-f", "2", "quotes.tsv"}, want: "x\ny\n"},
		{name: "quote as delimiter", args: []string{"-d", `"`, "-f", "2,3", "quoted.txt"}, want: "b\"c\n"},
		{name: "chars", args: []string{"-c", "1,2", "utf8.txt"}, want: "Ño\n"},
		{name: "char range", args: []string{"--characters", "2-3", "utf8.txt"}, want: "oñ\n"},
		{name: "bytes split a character", args: []string{"-b", "1", "utf8.txt"}, want: "�\n"},
		{name: "bytes whole character", args: []string{"-b", "1-2", "utf8.txt"}, want: "Ñ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, stdout, _ := newTestContext(t, files)
			if err := runTool(t, hc, "cutr", tt.args...); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCutCommand_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no mode", args: nil, want: "at least one of the flags"},
		{name: "two modes", args: []string{"-b", "1", "-c", "1"}, want: "none of the others can be"},
		{name: "delimiter without fields", args: []string{"-c", "1", "-d", ","}, want: "only when operating on fields"},
		{name: "long delimiter", args: []string{"-f", "1", "-d", ",,"}, want: "must be a single byte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, _, _ := newTestContext(t, nil)
			err := runTool(t, hc, "cutr", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestCutCommand_InvalidSelector(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"0", "a", "3-1", "1-2-3", "1,,2"} {
		t.Run(bad, func(t *testing.T) {
			t.Parallel()

			hc, _, _ := newTestContext(t, nil)
			err := runTool(t, hc, "cutr", "-f", bad)
			var fe *selection.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v, want a *selection.FormatError", err)
			}
			if iss, ok := issue.IssueOf(err); !ok || iss.Id() != issue.InvalidSelectorId {
				t.Errorf("IssueOf() = %v, %v", iss, ok)
			}
		})
	}
}
