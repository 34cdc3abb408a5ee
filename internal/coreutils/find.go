// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
)

type (
	// findCommand implements findr.
	findCommand struct {
		baseCommand
	}

	// entryType is one of the -t/--type letters.
	entryType byte

	findFilter struct {
		names []*regexp.Regexp
		types []entryType
	}
)

const (
	typeFile    entryType = 'f'
	typeDir     entryType = 'd'
	typeSymlink entryType = 'l'
)

func init() {
	RegisterDefault(newFindCommand())
}

func newFindCommand() *findCommand {
	c := &findCommand{}
	c.name = "findr"
	c.short = "Walk directory trees and print matching entries"
	c.build = c.cobra
	return c
}

func (c *findCommand) cobra(hc *HandlerContext) *cobra.Command {
	var (
		names     []string
		types     []string
		useIgnore bool
	)

	cmd := &cobra.Command{
		Use: "[PATH...]",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := newFindFilter(names, types)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"."}
			}

			failed := false
			for _, arg := range args {
				if !c.walk(cmd, hc, arg, filter, useIgnore) {
					failed = true
				}
			}
			if failed {
				return &StatusError{Code: 1}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&names, "name", "n", nil, "regular expression matched against the entry path (repeatable)")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "entry type: f (file), d (directory), l (symlink) (repeatable)")
	cmd.Flags().BoolVar(&useIgnore, "gitignore", hc.cfg().Find.Gitignore, "skip entries matched by the root's .gitignore")
	return cmd
}

func newFindFilter(names, types []string) (*findFilter, error) {
	f := &findFilter{}
	for _, name := range names {
		re, err := regexp.Compile(name)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("compile name pattern").
				WithResource(name).
				WithIssue(issue.InvalidPatternId).
				Wrap(err).
				BuildError()
		}
		f.names = append(f.names, re)
	}
	for _, t := range types {
		switch t {
		case "f", "d", "l":
			f.types = append(f.types, entryType(t[0]))
		default:
			return nil, fmt.Errorf("invalid argument %q for --type: must be one of f, d, l", t)
		}
	}
	return f, nil
}

// Matches reports whether an entry of the given mode, displayed as path,
// passes both the type and the name filters. An empty filter passes.
func (f *findFilter) Matches(path string, mode fs.FileMode) bool {
	typeOK := len(f.types) == 0
	for _, t := range f.types {
		if t.matches(mode) {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return false
	}

	if len(f.names) == 0 {
		return true
	}
	for _, re := range f.names {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

func (t entryType) matches(mode fs.FileMode) bool {
	switch t {
	case typeFile:
		return mode.IsRegular()
	case typeDir:
		return mode.IsDir()
	case typeSymlink:
		return mode&fs.ModeSymlink != 0
	default:
		return false
	}
}

// walk prints the matching entries below arg and reports whether the walk
// finished without errors.
func (c *findCommand) walk(cmd *cobra.Command, hc *HandlerContext, arg string, filter *findFilter, useIgnore bool) bool {
	logger := log.FromContext(cmd.Context())
	root := hc.resolve(arg)

	var ignore *gitignore.GitIgnore
	if useIgnore {
		ignore = loadGitignore(hc.Fs, root)
		logger.Debug("gitignore", "root", arg, "loaded", ignore != nil)
	}

	ok := true
	err := afero.Walk(hc.Fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(hc.Stderr, "%s: %s: %v\n", c.name, displayPath(arg, root, path), unwrapPathError(err))
			ok = false
			return nil
		}

		if useIgnore && path != root {
			if info.IsDir() && info.Name() == ".git" {
				return filepath.SkipDir
			}
			if ignored(ignore, root, path, info.IsDir()) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		display := displayPath(arg, root, path)
		if filter.Matches(display, info.Mode()) {
			fmt.Fprintln(hc.Stdout, display)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(hc.Stderr, "%s: %s: %v\n", c.name, arg, err)
		return false
	}
	return ok
}

// displayPath rewrites a walked path so that it starts with the argument the
// user typed: "." walks print "./a/b".
func displayPath(arg, root, path string) string {
	rest := strings.TrimPrefix(path, root)
	if rest == "" {
		return arg
	}
	if strings.HasSuffix(arg, "/") {
		rest = strings.TrimPrefix(rest, "/")
	}
	return arg + rest
}

func loadGitignore(fsys afero.Fs, root string) *gitignore.GitIgnore {
	data, err := afero.ReadFile(fsys, filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	lines := strings.Split(string(bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))), "\n")
	return gitignore.CompileIgnoreLines(lines...)
}

func ignored(ignore *gitignore.GitIgnore, root, path string, isDir bool) bool {
	if ignore == nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if ignore.MatchesPath(rel) {
		return true
	}
	// Patterns with a trailing slash only match directories.
	return isDir && ignore.MatchesPath(rel+"/")
}
