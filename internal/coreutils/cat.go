// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// catCommand implements catr.
type catCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCatCommand())
}

func newCatCommand() *catCommand {
	c := &catCommand{}
	c.name = "catr"
	c.short = "Concatenate files to standard output"
	c.build = c.cobra
	return c
}

func (c *catCommand) cobra(hc *HandlerContext) *cobra.Command {
	var number, numberNonblank bool

	cmd := &cobra.Command{
		Use: "[FILE...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ProcessFilesOrStdin(cmd.Context(), hc, args, c.name,
				func(r io.Reader, _ string, _, _ int) error {
					if !number && !numberNonblank {
						_, err := io.Copy(hc.Stdout, r)
						return err
					}
					return numberLines(hc.Stdout, r, numberNonblank)
				})
		},
	}
	cmd.Flags().BoolVarP(&number, "number", "n", false, "number all output lines")
	cmd.Flags().BoolVarP(&numberNonblank, "number-nonblank", "b", false, "number non-empty output lines")
	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")
	return cmd
}

// numberLines prefixes lines with "%6d\t". With nonblankOnly, empty lines
// are printed bare and do not advance the counter. Numbering restarts for
// every input.
func numberLines(out io.Writer, r io.Reader, nonblankOnly bool) error {
	lr := newLineReader(r)
	n := 0
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		text := trimEOL(line)
		if nonblankOnly && text == "" {
			fmt.Fprintln(out)
			continue
		}
		n++
		fmt.Fprintf(out, "%6d\t%s\n", n, text)
	}
}
