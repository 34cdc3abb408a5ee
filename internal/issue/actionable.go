// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError is an error with enough context to tell the user what
	// to do next.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("parse field list").
	//		WithResource("1,0").
	//		WithIssue(issue.InvalidSelectorId).
	//		Wrap(parseErr).
	//		Build()
	ActionableError struct {
		// Operation is a verb phrase such as "open input" or "parse field list".
		Operation string

		// Resource names the file, flag value or pattern involved (optional).
		Resource string

		// Suggestions are short hints, one per line (optional).
		Suggestions []string

		// Issue links the error to a catalog entry (zero when unset).
		Issue Id

		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext is a fluent builder for ActionableError.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		issue       Id
		cause       error
	}
)

// NewActionableError creates an ActionableError with the given operation.
func NewActionableError(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithContext wraps err with operation and resource context. It returns
// nil when err is nil.
func WrapWithContext(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Resource:  resource,
		Cause:     err,
	}
}

// Error returns the one-line form: failed to <operation>: <resource>: <cause>.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the error followed by its suggestions and, when the error
// is linked to the catalog, a pointer to "toolbox explain". Verbose output
// adds the unwrapped error chain.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if i := Get(e.Issue); i != nil {
		fmt.Fprintf(&msg, "\n\nRun 'toolbox explain %s' for details.", i.Slug())
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			depth++
		}
	}

	return msg.String()
}

// HasSuggestions reports whether the error carries any suggestion.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// WithOperation sets the operation being performed.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the resource involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one suggestion.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// WithSuggestions appends several suggestions.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.suggestions = append(c.suggestions, sugs...)
	return c
}

// WithIssue links the error to a catalog entry.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.issue = id
	return c
}

// Wrap sets the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build creates the ActionableError. It returns nil when no operation is set.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}

	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Issue:       c.issue,
		Cause:       c.cause,
	}
}

// BuildError is Build returned as an error, so a nil result stays a nil
// interface.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}

// IssueOf returns the catalog entry linked to the first ActionableError in
// err's chain.
func IssueOf(err error) (*Issue, bool) {
	var ae *ActionableError
	if !errors.As(err, &ae) {
		return nil, false
	}
	i := Get(ae.Issue)
	return i, i != nil
}
