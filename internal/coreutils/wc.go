// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

type (
	// wcCommand implements wcr.
	wcCommand struct {
		baseCommand
	}

	// wcCounts holds the counts for one input.
	wcCounts struct {
		lines, words, bytes, chars int
	}

	// wcColumns selects which counts are printed.
	wcColumns struct {
		lines, words, bytes, chars bool
	}
)

func init() {
	RegisterDefault(newWcCommand())
}

func newWcCommand() *wcCommand {
	c := &wcCommand{}
	c.name = "wcr"
	c.short = "Count lines, words, bytes and characters"
	c.build = c.cobra
	return c
}

func (c *wcCommand) cobra(hc *HandlerContext) *cobra.Command {
	var cols wcColumns

	cmd := &cobra.Command{
		Use: "[FILE...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cols == (wcColumns{}) {
				cols = wcColumns{lines: true, words: true, bytes: true}
			}

			var total wcCounts
			err := ProcessFilesOrStdin(cmd.Context(), hc, args, c.name,
				func(r io.Reader, filename string, _, _ int) error {
					counts, err := countInput(r)
					if err != nil {
						return err
					}
					total.add(counts)
					name := filename
					if len(args) == 0 {
						name = ""
					}
					return writeCounts(hc.Stdout, counts, cols, name)
				})
			if len(args) > 1 {
				if werr := writeCounts(hc.Stdout, total, cols, "total"); werr != nil {
					return werr
				}
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&cols.lines, "lines", "l", false, "print the newline counts")
	cmd.Flags().BoolVarP(&cols.words, "words", "w", false, "print the word counts")
	cmd.Flags().BoolVarP(&cols.bytes, "bytes", "c", false, "print the byte counts")
	cmd.Flags().BoolVarP(&cols.chars, "chars", "m", false, "print the character counts")
	return cmd
}

// countInput counts one input. Lines are "\n" characters and words are runs
// of non-space characters.
func countInput(r io.Reader) (wcCounts, error) {
	var counts wcCounts
	lr := newLineReader(r)
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return counts, nil
		}
		if err != nil {
			return counts, err
		}
		if strings.HasSuffix(line, "\n") {
			counts.lines++
		}
		counts.words += len(strings.Fields(line))
		counts.bytes += len(line)
		counts.chars += utf8.RuneCountInString(line)
	}
}

func (c *wcCounts) add(o wcCounts) {
	c.lines += o.lines
	c.words += o.words
	c.bytes += o.bytes
	c.chars += o.chars
}

// writeCounts prints the selected columns in lines, words, chars, bytes
// order, each right-aligned in seven columns, followed by name if set.
func writeCounts(out io.Writer, counts wcCounts, cols wcColumns, name string) error {
	var parts []string
	if cols.lines {
		parts = append(parts, fmt.Sprintf("%7d", counts.lines))
	}
	if cols.words {
		parts = append(parts, fmt.Sprintf("%7d", counts.words))
	}
	if cols.chars {
		parts = append(parts, fmt.Sprintf("%7d", counts.chars))
	}
	if cols.bytes {
		parts = append(parts, fmt.Sprintf("%7d", counts.bytes))
	}

	line := strings.Join(parts, " ")
	if name != "" {
		line += " " + name
	}
	_, err := fmt.Fprintln(out, line)
	return err
}
