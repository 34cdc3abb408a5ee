// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
	"github.com/zhang722/command-line-go/pkg/selection"
)

// cutCommand implements cutr.
type cutCommand struct {
	baseCommand
}

// cutMode says what a selector picks out of each line.
type cutMode int

const (
	cutBytes cutMode = iota
	cutChars
	cutFields
)

func init() {
	RegisterDefault(newCutCommand())
}

func newCutCommand() *cutCommand {
	c := &cutCommand{}
	c.name = "cutr"
	c.short = "Print selected bytes, characters or fields of each line"
	c.build = c.cobra
	return c
}

func (c *cutCommand) cobra(hc *HandlerContext) *cobra.Command {
	var bytesList, charsList, fieldsList, delimiter string

	cmd := &cobra.Command{
		Use: "[FILE...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, list := cutBytes, bytesList
			switch {
			case cmd.Flags().Changed("characters"):
				mode, list = cutChars, charsList
			case cmd.Flags().Changed("fields"):
				mode, list = cutFields, fieldsList
			}

			if cmd.Flags().Changed("delimiter") && mode != cutFields {
				return errors.New("an input delimiter may be specified only when operating on fields")
			}
			delim, err := parseDelimiter(delimiter)
			if err != nil {
				return err
			}

			sel, err := selection.ParseSelector(list)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("parse position list").
					WithIssue(issue.InvalidSelectorId).
					Wrap(err).
					BuildError()
			}

			return ProcessFilesOrStdin(cmd.Context(), hc, args, c.name,
				func(r io.Reader, _ string, _, _ int) error {
					if mode == cutFields {
						return cutFieldsOf(hc.Stdout, r, sel, delim)
					}
					return cutLines(hc.Stdout, r, sel, mode)
				})
		},
	}
	cmd.Flags().StringVarP(&bytesList, "bytes", "b", "", "select only these bytes")
	cmd.Flags().StringVarP(&charsList, "characters", "c", "", "select only these characters")
	cmd.Flags().StringVarP(&fieldsList, "fields", "f", "", "select only these fields")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "\t", "field delimiter (a single byte)")
	cmd.MarkFlagsOneRequired("bytes", "characters", "fields")
	cmd.MarkFlagsMutuallyExclusive("bytes", "characters", "fields")
	return cmd
}

func parseDelimiter(d string) (rune, error) {
	if len(d) != 1 {
		return 0, fmt.Errorf("--delim %q must be a single byte", d)
	}
	return rune(d[0]), nil
}

// cutLines applies sel to the bytes or characters of every line.
func cutLines(out io.Writer, r io.Reader, sel selection.Selector, mode cutMode) error {
	lr := newLineReader(r)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		text := trimEOL(line)
		var picked string
		if mode == cutBytes {
			picked = strings.ToValidUTF8(string(selection.Pick([]byte(text), sel)), "�")
		} else {
			picked = string(selection.Pick([]rune(text), sel))
		}
		if _, err := fmt.Fprintln(out, picked); err != nil {
			return err
		}
	}
}

// cutFieldsOf splits every line on delim and writes the selected fields
// joined by the same delimiter. Quotes have no special meaning.
func cutFieldsOf(out io.Writer, r io.Reader, sel selection.Selector, delim rune) error {
	sep := string(delim)
	lr := newLineReader(r)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Split(trimEOL(line), sep)
		if _, err := fmt.Fprintln(out, strings.Join(selection.Pick(fields, sel), sep)); err != nil {
			return err
		}
	}
}
