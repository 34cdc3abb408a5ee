// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/zhang722/command-line-go/internal/config"
	"github.com/zhang722/command-line-go/internal/coreutils"
	"github.com/zhang722/command-line-go/internal/issue"
)

// notFoundStatus is the shell's status for an unknown command.
const notFoundStatus = 127

type (
	// Options configure a Shell. Zero values fall back to the process
	// defaults (os streams, current directory, os.Environ, OS filesystem).
	Options struct {
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer

		// Dir is the initial working directory. It must exist on the host.
		Dir string
		// Env holds "KEY=value" pairs; nil inherits os.Environ.
		Env []string
		// Params are the positional parameters ($1, $2, ...).
		Params []string

		// Fs, Config, Clock and Color are handed to every tool.
		Fs     afero.Fs
		Config *config.Config
		Clock  coreutils.Clock
		Color  bool

		// NoHost disables the fallback to host binaries.
		NoHost bool
		// Registry resolves tool names; nil means coreutils.DefaultRegistry.
		Registry *coreutils.Registry
	}

	// Shell runs scripts against a tool registry.
	Shell struct {
		opts Options
	}
)

// New creates a Shell.
func New(opts Options) *Shell {
	if opts.Registry == nil {
		opts.Registry = coreutils.DefaultRegistry
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	return &Shell{opts: opts}
}

// Parse checks that script is valid shell syntax. name is used in error
// positions.
func (s *Shell) Parse(script, name string) (*syntax.File, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), name)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse script").
			WithResource(name).
			WithIssue(issue.ScriptFailedId).
			Wrap(err).
			BuildError()
	}
	return prog, nil
}

// Run executes script and returns its exit status. The error is non-nil only
// when the script could not be run at all (syntax error, bad directory,
// interpreter failure); a script exiting non-zero is reported through the
// status alone.
func (s *Shell) Run(ctx context.Context, script, name string) (int, error) {
	prog, err := s.Parse(script, name)
	if err != nil {
		return 1, err
	}

	opts := []interp.RunnerOption{
		interp.Dir(s.opts.Dir),
		interp.Env(expand.ListEnviron(s.opts.Env...)),
		interp.StdIO(s.opts.Stdin, s.opts.Stdout, s.opts.Stderr),
		interp.ExecHandlers(s.execHandler),
	}
	// "--" keeps parameters such as "-v" from being read as shell options.
	if len(s.opts.Params) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, s.opts.Params...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	err = runner.Run(ctx, prog)
	var status interp.ExitStatus
	switch {
	case errors.As(err, &status):
		return int(status), nil
	case err != nil:
		return 1, issue.NewErrorContext().
			WithOperation("run script").
			WithResource(name).
			WithIssue(issue.ScriptFailedId).
			Wrap(err).
			BuildError()
	}
	return 0, nil
}

// execHandler runs registered tools in-process and hands everything else to
// next (host binaries) unless NoHost is set.
func (s *Shell) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		hc := coreutils.ExtractHandlerContext(ctx)

		cmd, found := s.opts.Registry.Lookup(args[0])
		if !found {
			if s.opts.NoHost {
				fmt.Fprintf(hc.Stderr, "%s: command not found\n", args[0])
				return interp.ExitStatus(notFoundStatus)
			}
			return next(ctx, args)
		}

		hc.Fs = s.opts.Fs
		hc.Config = s.opts.Config
		hc.Clock = s.opts.Clock
		hc.Color = s.opts.Color
		log.FromContext(ctx).Debug("dispatch", "tool", args[0], "dir", hc.Dir)

		err := cmd.Run(coreutils.WithHandlerContext(ctx, hc), args)
		if err == nil {
			return nil
		}

		// A StatusError has already been reported by the tool.
		var se *coreutils.StatusError
		if !errors.As(err, &se) {
			fmt.Fprintf(hc.Stderr, "%s: %v\n", args[0], err)
		}
		return interp.ExitStatus(coreutils.ExitCode(err))
	}
}
