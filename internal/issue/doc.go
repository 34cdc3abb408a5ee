// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and a
// list of suggestions. An error may point at a catalog Issue, whose Markdown
// explanation is rendered with glamour by "toolbox explain".
package issue
