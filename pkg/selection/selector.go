// SPDX-License-Identifier: MPL-2.0

package selection

import (
	"strconv"
	"strings"
)

// Selector is an ordered list of zero-based positions produced by ParseSelector.
// Duplicates are kept, and positions are never checked against a record length
// until Filter or Pick is applied.
type Selector []int

// ParseSelector parses selector text into zero-based positions.
//
// The accepted forms are tried in order:
//
//	"1,3,5"  comma list (two or more tokens), order and duplicates preserved
//	"2-4"    inclusive range, ascending
//	"5"      single position
//
// Every number must be a positive decimal integer.
func ParseSelector(text string) (Selector, error) {
	switch {
	case strings.Contains(text, ","):
		return parseCommaList(text)
	case strings.Contains(text, "-"):
		return parseDashRange(text)
	default:
		n, err := parsePosition(text, text)
		if err != nil {
			return nil, err
		}
		return Selector{n - 1}, nil
	}
}

func parseCommaList(text string) (Selector, error) {
	tokens := strings.Split(text, ",")
	sel := make(Selector, 0, len(tokens))
	for _, tok := range tokens {
		n, err := parsePosition(tok, text)
		if err != nil {
			return nil, err
		}
		sel = append(sel, n-1)
	}
	return sel, nil
}

func parseDashRange(text string) (Selector, error) {
	tokens := strings.Split(text, "-")
	if len(tokens) != 2 {
		return nil, formatErr(text, "a range takes exactly two bounds")
	}

	start, err := parsePosition(tokens[0], text)
	if err != nil {
		return nil, err
	}
	end, err := parsePosition(tokens[1], text)
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, formatErr(text, "range start is greater than range end")
	}

	sel := make(Selector, 0, end-start+1)
	for i := start; i <= end; i++ {
		sel = append(sel, i-1)
	}
	return sel, nil
}

// parsePosition parses a one-based position token. whole is reported when the
// token itself is empty, since an empty string names nothing useful.
func parsePosition(tok, whole string) (int, error) {
	if tok == "" {
		return 0, formatErr(whole, "empty position")
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, formatErr(tok, "not a positive integer")
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, formatErr(tok, "number out of range")
	}
	if n == 0 {
		return 0, formatErr(tok, "positions start at 1")
	}
	return n, nil
}

// Filter returns the positions that fall inside a record of the given length,
// in selector order. Out-of-range positions are dropped, not reported.
func (s Selector) Filter(length int) []int {
	kept := make([]int, 0, len(s))
	for _, idx := range s {
		if idx < length {
			kept = append(kept, idx)
		}
	}
	return kept
}

// Pick returns the items at the selector's positions, skipping positions past
// the end of items.
func Pick[T any](items []T, sel Selector) []T {
	idx := sel.Filter(len(items))
	picked := make([]T, 0, len(idx))
	for _, i := range idx {
		picked = append(picked, items[i])
	}
	return picked
}
