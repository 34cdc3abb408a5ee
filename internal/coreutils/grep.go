// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
)

type (
	// grepCommand implements grepr.
	grepCommand struct {
		baseCommand
	}

	grepOptions struct {
		ignoreCase  bool
		invert      bool
		count       bool
		recursive   bool
		lineNumbers bool
		filesOnly   bool
		withName    bool
		noName      bool
		perl        bool
	}
)

func init() {
	RegisterDefault(newGrepCommand())
}

func newGrepCommand() *grepCommand {
	c := &grepCommand{}
	c.name = "grepr"
	c.short = "Print lines that match a pattern"
	c.build = c.cobra
	return c
}

func (c *grepCommand) cobra(hc *HandlerContext) *cobra.Command {
	var opts grepOptions

	cmd := &cobra.Command{
		Use:  "PATTERN [FILE...]",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := compileMatcher(args[0], opts.ignoreCase, opts.perl)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("compile pattern").
					WithResource(args[0]).
					WithIssue(issue.InvalidPatternId).
					Wrap(err).
					BuildError()
			}

			inputs, failed := c.expandInputs(cmd, hc, args[1:], opts.recursive)
			showName := (len(inputs) > 1 || opts.withName) && !opts.noName
			g := &grepRun{hc: hc, m: m, opts: opts, showName: showName,
				match: painter(hc.Color, color.FgRed, color.Bold),
				name:  painter(hc.Color, color.FgMagenta),
			}

			if len(args) > 1 && len(inputs) == 0 {
				// Only empty directories were given; stdin is not a fallback.
				if failed {
					return &StatusError{Code: 2}
				}
				return &StatusError{Code: 1}
			}
			err = ProcessFilesOrStdin(cmd.Context(), hc, inputs, c.name,
				func(r io.Reader, filename string, _, _ int) error {
					return g.search(r, filename)
				})

			var se *StatusError
			switch {
			case err != nil && !errors.As(err, &se):
				return err
			case failed || err != nil:
				return &StatusError{Code: 2}
			case !g.matched:
				return &StatusError{Code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "ignore case distinctions")
	cmd.Flags().BoolVarP(&opts.invert, "invert-match", "v", false, "select non-matching lines")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "print only a count of selected lines per file")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "search directories recursively")
	cmd.Flags().BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix each line with its line number")
	cmd.Flags().BoolVarP(&opts.filesOnly, "files-with-matches", "l", false, "print only names of files with selected lines")
	cmd.Flags().BoolVarP(&opts.withName, "with-filename", "H", false, "print the file name for each match")
	cmd.Flags().BoolVarP(&opts.noName, "no-filename", "h", false, "suppress the file name prefix")
	cmd.Flags().BoolVarP(&opts.perl, "perl-regexp", "P", false, "use Perl-compatible patterns (lookarounds)")
	return cmd
}

// expandInputs replaces directories with the regular files below them when
// recursive is set. The second result reports walk errors.
func (c *grepCommand) expandInputs(cmd *cobra.Command, hc *HandlerContext, args []string, recursive bool) ([]string, bool) {
	if len(args) == 0 {
		return nil, false
	}

	var inputs []string
	failed := false
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, arg)
			continue
		}
		isDir, err := afero.IsDir(hc.Fs, hc.resolve(arg))
		if err != nil || !isDir || !recursive {
			// ProcessFilesOrStdin reports missing files and directories.
			inputs = append(inputs, arg)
			continue
		}

		root := hc.resolve(arg)
		walkErr := afero.Walk(hc.Fs, root, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				fmt.Fprintf(hc.Stderr, "%s: %s: %v\n", c.name, displayPath(arg, root, path), unwrapPathError(err))
				failed = true
				return nil
			}
			if info.Mode().IsRegular() {
				inputs = append(inputs, displayPath(arg, root, path))
			}
			return nil
		})
		if walkErr != nil {
			log.FromContext(cmd.Context()).Warn("walk aborted", "root", arg, "err", walkErr)
			failed = true
		}
	}
	return inputs, failed
}

// grepRun holds the state of one grepr invocation across inputs.
type grepRun struct {
	hc       *HandlerContext
	m        matcher
	opts     grepOptions
	showName bool
	matched  bool

	match, name *color.Color
}

func (g *grepRun) search(r io.Reader, filename string) error {
	out := g.hc.Stdout
	display := filename
	if display == "-" {
		display = "(standard input)"
	}
	prefix := ""
	if g.showName {
		prefix = g.name.Sprint(display) + ":"
	}

	lr := newLineReader(r)
	count := 0
	for lineNo := 1; ; lineNo++ {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		text := trimEOL(line)
		ok, err := g.m.Match(text)
		if err != nil {
			return err
		}
		if ok == g.opts.invert {
			continue
		}

		count++
		g.matched = true
		if g.opts.filesOnly {
			break
		}
		if g.opts.count {
			continue
		}

		if !g.opts.invert && g.hc.Color {
			spans, err := g.m.Spans(text)
			if err != nil {
				return err
			}
			text = highlight(text, spans, g.match.Sprint)
		}
		if g.opts.lineNumbers {
			fmt.Fprintf(out, "%s%d:%s\n", prefix, lineNo, text)
		} else {
			fmt.Fprintf(out, "%s%s\n", prefix, text)
		}
	}

	switch {
	case g.opts.filesOnly && count > 0:
		fmt.Fprintln(out, g.name.Sprint(display))
	case g.opts.count && !g.opts.filesOnly:
		fmt.Fprintf(out, "%s%d\n", prefix, count)
	}
	return nil
}
