// SPDX-License-Identifier: MPL-2.0

package selection

import (
	"strconv"
	"strings"
)

const (
	// Absolute keeps the last N records.
	Absolute Mode = iota
	// FromStart keeps every record from position N (zero-based) to the end.
	FromStart
)

type (
	// Mode selects how an Offset's magnitude is interpreted.
	Mode int

	// Offset is a record count paired with its interpretation.
	Offset struct {
		Mode Mode
		N    int
	}
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case FromStart:
		return "from-start"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// String renders the offset the way it would be written on a command line.
func (o Offset) String() string {
	if o.Mode == FromStart {
		return "+" + strconv.Itoa(o.N)
	}
	return strconv.Itoa(o.N)
}

// ParseOffset parses "N" (Absolute) or "+N" (FromStart). N must be a
// non-negative decimal integer; a leading minus sign is rejected.
func ParseOffset(text string) (Offset, error) {
	mode := Absolute
	digits := text
	if rest, ok := strings.CutPrefix(text, "+"); ok {
		mode = FromStart
		digits = rest
	}

	if digits == "" {
		return Offset{}, formatErr(text, "missing count")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Offset{}, formatErr(text, "not a non-negative integer")
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Offset{}, formatErr(text, "count out of range")
	}
	return Offset{Mode: mode, N: n}, nil
}

// SelectWindow returns the half-open range [start, end) of the positions to
// emit out of total records. The result is always within [0, total].
func SelectWindow(total int, off Offset) (start, end int) {
	if total < 0 {
		total = 0
	}
	n := max(off.N, 0)

	switch off.Mode {
	case FromStart:
		return min(n, total), total
	default:
		return max(total-n, 0), total
	}
}

// Window returns the sub-slice of items selected by off.
func Window[T any](items []T, off Offset) []T {
	start, end := SelectWindow(len(items), off)
	return items[start:end]
}
