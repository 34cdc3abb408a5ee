// SPDX-License-Identifier: MPL-2.0

// Package selection holds the record-picking logic shared by the text tools.
//
// Three independent pieces live here:
//
//   - Selector: a parsed list of zero-based positions ("1,3", "2-4", "5")
//     used by cutr to pick bytes, characters or fields out of a line.
//   - ComparisonPolicy and LinesEqual: "same line" under skip/truncate/case
//     transforms, used by uniqr for adjacent grouping.
//   - Offset, SelectWindow and Window: "last N" versus "from N onward"
//     resolution, used by tailr for both line and byte records.
//
// Everything in the package is pure. Malformed input surfaces as *FormatError,
// which wraps ErrFormat.
package selection
