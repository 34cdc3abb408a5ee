// SPDX-License-Identifier: MPL-2.0

package selection

import "strings"

// ComparisonPolicy describes how two lines are normalised before they are
// compared. Zero values disable the matching transform.
type ComparisonPolicy struct {
	// SkipFields ignores this many leading blank-separated fields.
	SkipFields int
	// CheckChars keeps at most this many characters.
	CheckChars int
	// SkipChars drops this many leading characters after CheckChars is applied.
	SkipChars int
	// IgnoreCase folds both sides to lower case.
	IgnoreCase bool
}

// LinesEqual reports whether a and b are the same line under policy.
func LinesEqual(a, b string, policy ComparisonPolicy) bool {
	return policy.Key(a) == policy.Key(b)
}

// Key returns the normalised form of line that LinesEqual compares.
//
// Truncation happens before the skip, and both bounds are clamped to the
// length of the string they apply to. Lengths are counted in characters, so a
// multi-byte character is never split.
func (p ComparisonPolicy) Key(line string) string {
	if p.SkipFields > 0 {
		line = skipFields(line, p.SkipFields)
	}

	if p.CheckChars > 0 || p.SkipChars > 0 {
		runes := []rune(line)
		if p.CheckChars > 0 {
			runes = runes[:min(p.CheckChars, len(runes))]
		}
		if p.SkipChars > 0 {
			runes = runes[min(p.SkipChars, len(runes)):]
		}
		line = string(runes)
	}

	if p.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}

// skipFields drops n fields, where a field is a run of blanks followed by a
// run of non-blanks. The blanks in front of the next field are kept.
func skipFields(line string, n int) string {
	i := 0
	for ; n > 0 && i < len(line); n-- {
		for i < len(line) && isBlank(line[i]) {
			i++
		}
		for i < len(line) && !isBlank(line[i]) {
			i++
		}
	}
	return line[i:]
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
