// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
)

// headCommand implements headr.
type headCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newHeadCommand())
}

func newHeadCommand() *headCommand {
	c := &headCommand{}
	c.name = "headr"
	c.short = "Print the first lines or bytes of files"
	c.build = c.cobra
	return c
}

func (c *headCommand) cobra(hc *HandlerContext) *cobra.Command {
	var lines, bytes string

	cmd := &cobra.Command{
		Use: "[FILE...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parsePositive("line", lines)
			if err != nil {
				return err
			}
			byteMode := cmd.Flags().Changed("bytes")
			if byteMode {
				if n, err = parsePositive("byte", bytes); err != nil {
					return err
				}
			}

			return ProcessFilesOrStdin(cmd.Context(), hc, args, c.name,
				func(r io.Reader, filename string, index, total int) error {
					if total > 1 {
						header(hc.Stdout, filename, index)
					}
					if byteMode {
						return headBytes(hc.Stdout, r, n)
					}
					return headLines(hc.Stdout, r, n)
				})
		},
	}
	cmd.Flags().StringVarP(&lines, "lines", "n", strconv.Itoa(hc.cfg().Head.Lines), "number of lines to print")
	cmd.Flags().StringVarP(&bytes, "bytes", "c", "", "number of bytes to print")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	return cmd
}

// headLines copies the first n lines, keeping their line endings.
func headLines(out io.Writer, r io.Reader, n int) error {
	lr := newLineReader(r)
	for range n {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
	}
	return nil
}

// headBytes copies the first n bytes. A multi-byte character cut in half is
// written as U+FFFD.
func headBytes(out io.Writer, r io.Reader, n int) error {
	buf, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	_, err = io.WriteString(out, strings.ToValidUTF8(string(buf), "�"))
	return err
}

// parsePositive parses a count for headr. kind names the unit in errors
// ("illegal line count -- 0").
func parsePositive(kind, text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err == nil && n > 0 {
		return n, nil
	}
	return 0, issue.NewErrorContext().
		WithOperation("parse " + kind + " count").
		WithIssue(issue.InvalidOffsetId).
		Wrap(fmt.Errorf("illegal %s count -- %s", kind, text)).
		BuildError()
}
