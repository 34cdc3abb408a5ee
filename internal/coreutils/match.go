// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"regexp"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

type (
	// matcher is a compiled pattern. Spans are byte offsets.
	matcher interface {
		Match(s string) (bool, error)
		Spans(s string) ([][2]int, error)
	}

	re2Matcher struct {
		re *regexp.Regexp
	}

	// perlMatcher wraps regexp2, which works in rune offsets.
	perlMatcher struct {
		re *regexp2.Regexp
	}
)

// compileMatcher compiles pattern with RE2 syntax, or with the backtracking
// engine when perl is set (lookarounds, backreferences).
func compileMatcher(pattern string, ignoreCase, perl bool) (matcher, error) {
	if perl {
		opts := regexp2.None
		if ignoreCase {
			opts |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(pattern, opts)
		if err != nil {
			return nil, err
		}
		return &perlMatcher{re: re}, nil
	}

	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &re2Matcher{re: re}, nil
}

func (m *re2Matcher) Match(s string) (bool, error) {
	return m.re.MatchString(s), nil
}

func (m *re2Matcher) Spans(s string) ([][2]int, error) {
	var spans [][2]int
	for _, loc := range m.re.FindAllStringIndex(s, -1) {
		if loc[0] < loc[1] {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	return spans, nil
}

func (m *perlMatcher) Match(s string) (bool, error) {
	return m.re.MatchString(s)
}

func (m *perlMatcher) Spans(s string) ([][2]int, error) {
	// byteAt[i] is the byte offset of rune i; the extra entry is len(s).
	byteAt := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		byteAt = append(byteAt, i)
	}
	byteAt = append(byteAt, len(s))

	var spans [][2]int
	match, err := m.re.FindStringMatch(s)
	for match != nil && err == nil {
		if match.Length > 0 {
			spans = append(spans, [2]int{byteAt[match.Index], byteAt[match.Index+match.Length]})
		}
		match, err = m.re.FindNextMatch(match)
	}
	return spans, err
}

// highlight wraps every span of line with paint.
func highlight(line string, spans [][2]int, paint func(a ...any) string) string {
	if len(spans) == 0 {
		return line
	}
	out := make([]byte, 0, len(line)+len(spans)*12)
	prev := 0
	for _, sp := range spans {
		out = append(out, line[prev:sp[0]]...)
		out = append(out, paint(line[sp[0]:sp[1]])...)
		prev = sp[1]
	}
	return string(append(out, line[prev:]...))
}
