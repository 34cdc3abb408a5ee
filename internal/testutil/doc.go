// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by tests: a settable clock,
// in-memory filesystems seeded from a map, and environment helpers that fail
// the test instead of returning errors.
package testutil
