// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/pkg/selection"
)

// uniqCommand implements uniqr.
type uniqCommand struct {
	baseCommand
}

// uniqOptions selects which groups are printed and how.
type uniqOptions struct {
	count          bool
	duplicatesOnly bool
	uniqueOnly     bool
	policy         selection.ComparisonPolicy
}

func init() {
	RegisterDefault(newUniqCommand())
}

func newUniqCommand() *uniqCommand {
	c := &uniqCommand{}
	c.name = "uniqr"
	c.short = "Collapse adjacent matching lines"
	c.build = c.cobra
	return c
}

func (c *uniqCommand) cobra(hc *HandlerContext) *cobra.Command {
	var opts uniqOptions
	var skipChars, checkChars, skipFields uint

	cmd := &cobra.Command{
		Use:  "[INPUT [OUTPUT]]",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.policy.SkipChars = int(skipChars)
			opts.policy.CheckChars = int(checkChars)
			opts.policy.SkipFields = int(skipFields)

			in := []string{"-"}
			if len(args) > 0 {
				in = args[:1]
			}

			out := hc.Stdout
			if len(args) == 2 {
				f, createErr := hc.Fs.Create(hc.resolve(args[1]))
				if createErr != nil {
					return wrapError(args[1], unwrapPathError(createErr))
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil && err == nil {
						err = closeErr
					}
				}()
				out = f
			}

			return ProcessFilesOrStdin(cmd.Context(), hc, in, c.name,
				func(r io.Reader, _ string, _, _ int) error {
					return uniq(out, r, opts)
				})
		},
	}
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "prefix lines by the number of occurrences")
	cmd.Flags().BoolVarP(&opts.duplicatesOnly, "repeated", "d", false, "only print one line of each repeated group")
	cmd.Flags().BoolVarP(&opts.uniqueOnly, "unique", "u", false, "only print lines that are not repeated")
	cmd.Flags().BoolVarP(&opts.policy.IgnoreCase, "ignore-case", "i", false, "ignore differences in case when comparing")
	cmd.Flags().UintVarP(&skipChars, "skip-chars", "s", 0, "avoid comparing the first N characters")
	cmd.Flags().UintVarP(&checkChars, "check-chars", "w", 0, "compare no more than N characters")
	cmd.Flags().UintVarP(&skipFields, "skip-fields", "f", 0, "avoid comparing the first N fields")
	return cmd
}

// uniq writes the first line of every run of adjacent equal lines. Giving
// both -d and -u is the same as giving neither.
func uniq(out io.Writer, r io.Reader, opts uniqOptions) error {
	showAll := opts.duplicatesOnly == opts.uniqueOnly

	emit := func(line string, n int) error {
		if !showAll && (n > 1) != opts.duplicatesOnly {
			return nil
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if opts.count {
			_, err := fmt.Fprintf(out, "%7d %s", n, line)
			return err
		}
		_, err := io.WriteString(out, line)
		return err
	}

	lr := newLineReader(r)
	var first, firstKey string
	n := 0
	for {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		key := trimEOL(line)
		if n > 0 && selection.LinesEqual(key, firstKey, opts.policy) {
			n++
			continue
		}
		if n > 0 {
			if err := emit(first, n); err != nil {
				return err
			}
		}
		first, firstKey, n = line, key, 1
	}

	if n > 0 {
		return emit(first, n)
	}
	return nil
}
