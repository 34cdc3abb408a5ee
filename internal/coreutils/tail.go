// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
	"github.com/zhang722/command-line-go/pkg/selection"
)

// tailCommand implements tailr.
type tailCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newTailCommand())
}

func newTailCommand() *tailCommand {
	c := &tailCommand{}
	c.name = "tailr"
	c.short = "Print the last lines or bytes of files"
	c.build = c.cobra
	return c
}

func (c *tailCommand) cobra(hc *HandlerContext) *cobra.Command {
	var lines, byteCount string
	var quiet bool

	cmd := &cobra.Command{
		Use: "[FILE...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			byteMode := cmd.Flags().Changed("bytes")
			text := lines
			if byteMode {
				text = byteCount
			}
			off, err := selection.ParseOffset(text)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("parse count").
					WithIssue(issue.InvalidOffsetId).
					WithSuggestion(`Use "N" for the last N records or "+N" to start after the first N`).
					Wrap(err).
					BuildError()
			}
			log.FromContext(cmd.Context()).Debug("tail window", "offset", off, "mode", off.Mode, "bytes", byteMode)

			return ProcessFilesOrStdin(cmd.Context(), hc, args, c.name,
				func(r io.Reader, filename string, index, total int) error {
					if total > 1 && !quiet {
						header(hc.Stdout, filename, index)
					}
					if byteMode {
						return tailBytes(hc.Stdout, r, off)
					}
					return tailLines(hc.Stdout, r, off)
				})
		},
	}
	cmd.Flags().StringVarP(&lines, "lines", "n", hc.cfg().TailOffset().String(), `number of lines ("+N" starts after line N)`)
	cmd.Flags().StringVarP(&byteCount, "bytes", "c", "", `number of bytes ("+N" starts after byte N)`)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "never print headers")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")
	return cmd
}

// tailLines writes the lines selected by off. Seekable inputs are counted
// first and re-read; anything else is buffered.
func tailLines(out io.Writer, r io.Reader, off selection.Offset) error {
	if rs, base, ok := seekable(r); ok {
		total, err := countLines(rs)
		if err != nil {
			return err
		}
		if _, err := rs.Seek(base, io.SeekStart); err != nil {
			return err
		}
		start, end := selection.SelectWindow(total, off)
		return copyLines(out, rs, start, end)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	for _, line := range selection.Window(splitLines(string(data)), off) {
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
	}
	return nil
}

// tailBytes writes the bytes selected by off. Characters cut at the window
// edge are written as U+FFFD.
func tailBytes(out io.Writer, r io.Reader, off selection.Offset) error {
	var window []byte
	if rs, base, ok := seekable(r); ok {
		size, err := rs.Seek(0, io.SeekEnd)
		if err != nil {
			return err
		}
		start, end := selection.SelectWindow(int(size-base), off)
		if _, err := rs.Seek(base+int64(start), io.SeekStart); err != nil {
			return err
		}
		if window, err = io.ReadAll(io.LimitReader(rs, int64(end-start))); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	} else {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		window = selection.Window(data, off)
	}
	_, err := io.WriteString(out, strings.ToValidUTF8(string(window), "�"))
	return err
}

// seekable reports whether r can be rewound, along with its current offset.
// Pipes implement io.Seeker but fail on use, so the probe is a real seek.
func seekable(r io.Reader) (io.ReadSeeker, int64, bool) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, 0, false
	}
	base, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, 0, false
	}
	return rs, base, true
}

// countLines counts records: every "\n" ends one, and trailing bytes after
// the last "\n" form one more.
func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	total := 0
	last := byte('\n')
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
	}
	if last != '\n' {
		total++
	}
	return total, nil
}

// copyLines writes lines [start, end) of r.
func copyLines(out io.Writer, r io.Reader, start, end int) error {
	lr := newLineReader(r)
	for i := 0; i < end; i++ {
		line, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if i < start {
			continue
		}
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
	}
	return nil
}

// splitLines splits s after every "\n", keeping the terminators.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
