// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type (
	// lsCommand implements lsr.
	lsCommand struct {
		baseCommand
	}

	lsOptions struct {
		long  bool
		all   bool
		human bool
	}

	// lsEntry is one output row; path is what gets printed.
	lsEntry struct {
		path string
		info fs.FileInfo
	}
)

// recentWindow decides between the "15:04" and the "2006" mtime column.
const recentWindow = 182 * 24 * time.Hour

func init() {
	RegisterDefault(newLsCommand())
}

func newLsCommand() *lsCommand {
	c := &lsCommand{}
	c.name = "lsr"
	c.short = "List directory contents"
	c.build = c.cobra
	return c
}

func (c *lsCommand) cobra(hc *HandlerContext) *cobra.Command {
	opts := lsOptions{all: hc.cfg().Ls.All}

	cmd := &cobra.Command{
		Use: "[PATH...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			var entries []lsEntry
			failed := false
			for _, arg := range args {
				found, err := c.collect(hc, arg, opts.all)
				if err != nil {
					fmt.Fprintf(hc.Stderr, "%s: %s: %v\n", c.name, arg, unwrapPathError(err))
					failed = true
					continue
				}
				entries = append(entries, found...)
			}

			l := &lsPrinter{
				hc:   hc,
				opts: opts,
				dir:  painter(hc.Color, color.FgBlue, color.Bold),
				link: painter(hc.Color, color.FgCyan),
			}
			if err := l.print(entries); err != nil {
				return err
			}
			if failed {
				return &StatusError{Code: 1}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.long, "long", "l", false, "use a long listing format")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", opts.all, "do not ignore entries starting with .")
	cmd.Flags().BoolVarP(&opts.human, "human-readable", "h", false, "print sizes like 1.0 KiB")
	return cmd
}

// collect returns arg itself when it is not a directory, otherwise its
// entries sorted by name.
func (c *lsCommand) collect(hc *HandlerContext, arg string, all bool) ([]lsEntry, error) {
	path := hc.resolve(arg)
	info, err := lstat(hc.Fs, path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []lsEntry{{path: arg, info: info}}, nil
	}

	infos, err := afero.ReadDir(hc.Fs, path)
	if err != nil {
		return nil, err
	}
	prefix := arg
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	entries := make([]lsEntry, 0, len(infos))
	for _, fi := range infos {
		if !all && strings.HasPrefix(fi.Name(), ".") {
			continue
		}
		entries = append(entries, lsEntry{path: prefix + fi.Name(), info: fi})
	}
	return entries, nil
}

// lstat avoids following symlinks on filesystems that can tell them apart.
func lstat(fsys afero.Fs, path string) (fs.FileInfo, error) {
	if ls, ok := fsys.(afero.Lstater); ok {
		info, _, err := ls.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

type lsPrinter struct {
	hc   *HandlerContext
	opts lsOptions

	dir, link *color.Color
}

func (l *lsPrinter) print(entries []lsEntry) error {
	if !l.opts.long {
		for _, e := range entries {
			if _, err := fmt.Fprintln(l.hc.Stdout, l.name(e)); err != nil {
				return err
			}
		}
		return nil
	}

	sizes := make([]string, len(entries))
	width := 0
	for i, e := range entries {
		sizes[i] = l.size(e.info.Size())
		width = max(width, len(sizes[i]))
	}

	now := l.hc.Clock.Now()
	for i, e := range entries {
		_, err := fmt.Fprintf(l.hc.Stdout, "%s %*s %s %s\n",
			e.info.Mode(), width, sizes[i], mtime(e.info.ModTime(), now), l.name(e))
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *lsPrinter) name(e lsEntry) string {
	switch mode := e.info.Mode(); {
	case mode&fs.ModeSymlink != 0:
		return l.link.Sprint(e.path)
	case mode.IsDir():
		return l.dir.Sprint(e.path)
	default:
		return e.path
	}
}

func (l *lsPrinter) size(n int64) string {
	if l.opts.human {
		return humanize.IBytes(uint64(max(n, 0)))
	}
	return strconv.FormatInt(n, 10)
}

// mtime prints the time of day for recent files and the year otherwise.
func mtime(t, now time.Time) string {
	if d := now.Sub(t); d > recentWindow || d < -recentWindow {
		return t.Format("Jan _2  2006")
	}
	return t.Format("Jan _2 15:04")
}
