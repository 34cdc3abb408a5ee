// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zhang722/command-line-go/internal/config"
	"github.com/zhang722/command-line-go/internal/coreutils"
	"github.com/zhang722/command-line-go/internal/issue"
)

// notFoundStatus matches the status a shell uses for an unknown command.
const notFoundStatus = 127

type (
	// Dependencies holds the external collaborators of an App. Zero fields
	// fall back to the process defaults.
	Dependencies struct {
		Config   config.Provider
		Registry *coreutils.Registry
		Fs       afero.Fs
		Clock    coreutils.Clock

		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer

		// Dir is the working directory for "toolbox run"; empty means the
		// process working directory.
		Dir string
		// ConfigDir overrides the configuration directory lookup.
		ConfigDir string

		LookupEnv  func(string) (string, bool)
		IsTerminal func(io.Writer) bool
	}

	// App is the composition root shared by the standalone binaries and the
	// toolbox.
	App struct {
		deps Dependencies
		// exit is the status of the last tool run; nil means success.
		exit *ExitError
	}

	// session is the state of one invocation once the global flags and the
	// configuration are resolved.
	session struct {
		ctx     context.Context
		name    string
		cfg     *config.Config
		hc      *coreutils.HandlerContext
		verbose bool
		color   bool
	}
)

// NewApp creates an App, filling unset dependencies with process defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		deps.Registry = coreutils.DefaultRegistry
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = isTerminal
	}
	return &App{deps: deps}
}

// Run runs the named tool with args (without the program name) the way its
// standalone binary does and returns the exit status.
func (a *App) Run(ctx context.Context, name string, args []string) int {
	tool, ok := a.deps.Registry.Lookup(name)
	if !ok {
		fmt.Fprintf(a.deps.Stderr, "%s: command not found\n", name)
		return notFoundStatus
	}

	opts, rest, err := splitGlobalFlags(args, tool.SupportedFlags())
	if err != nil {
		fmt.Fprintf(a.deps.Stderr, "%s: %v\n", name, err)
		return 1
	}
	s, err := a.newSession(ctx, name, opts)
	if err != nil {
		fmt.Fprintf(a.deps.Stderr, "%s: %s\n", name, formatErrorForDisplay(err, opts.verbose))
		return 1
	}

	cmd := a.toolCommand(tool, s)
	cmd.SetArgs(rest)
	return a.execute(s.ctx, cmd, fang.WithoutManpage(), fang.WithoutCompletions())
}

// RunToolbox runs the toolbox command tree with args and returns the exit
// status.
func (a *App) RunToolbox(ctx context.Context, args []string) int {
	root := a.newToolboxCommand()
	root.SetArgs(args)
	return a.execute(ctx, root)
}

// execute hands root to fang. Tool failures are recorded in a.exit by the
// RunE wrappers; an error coming back from fang is a usage error it has
// already printed.
func (a *App) execute(ctx context.Context, root *cobra.Command, options ...fang.Option) int {
	a.exit = nil
	root.SetIn(a.deps.Stdin)
	root.SetOut(a.deps.Stdout)
	root.SetErr(a.deps.Stderr)

	options = append([]fang.Option{
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	}, options...)

	if err := fang.Execute(ctx, root, options...); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	if a.exit != nil {
		return a.exit.Code
	}
	return 0
}

// toolCommand builds the standalone root command for tool.
func (a *App) toolCommand(tool coreutils.Command, s *session) *cobra.Command {
	cmd := tool.Cobra(s.hc)
	// fang adds no subcommands here, but a root with subcommands rejects
	// positional arguments unless Args is set.
	if cmd.Args == nil {
		cmd.Args = cobra.ArbitraryArgs
	}

	// Already consumed by splitGlobalFlags; registered so --help lists them.
	var shown globalOptions
	addGlobalFlags(cmd.Flags(), &shown)

	runE := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		a.exit = a.report(s, runE(c, args))
		return nil
	}
	return cmd
}

// newSession loads configuration and derives the logger, colour decision
// and HandlerContext for one invocation named name.
func (a *App) newSession(ctx context.Context, name string, opts globalOptions) (*session, error) {
	logger := log.NewWithOptions(a.deps.Stderr, log.Options{
		Prefix: name,
		Level:  log.WarnLevel,
	})

	cfg, err := a.deps.Config.Load(ctx, config.LoadOptions{
		ConfigFilePath: opts.configPath,
		ConfigDirPath:  a.deps.ConfigDir,
		Fs:             a.deps.Fs,
	})
	if err != nil {
		// A broken config file must not stop the tools.
		fmt.Fprintf(a.deps.Stderr, "%s: %s%s\n", name, WarningStyle.Render("warning: "), formatErrorForDisplay(err, opts.verbose))
		cfg = config.DefaultConfig()
	}

	verbose := opts.verbose || cfg.UI.Verbose
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	mode := cfg.UI.Color
	if opts.color != "" {
		mode = config.ColorMode(opts.color)
		if err := mode.Validate(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("parse --color").
				WithResource(opts.color).
				WithSuggestion("Use one of auto, always or never").
				Wrap(err).
				BuildError()
		}
	}
	color := a.colorEnabled(mode)
	logger.Debug("session", "config", opts.configPath, "color", color)

	hc := &coreutils.HandlerContext{
		Stdin:     a.deps.Stdin,
		Stdout:    a.deps.Stdout,
		Stderr:    a.deps.Stderr,
		LookupEnv: a.deps.LookupEnv,
		Fs:        a.deps.Fs,
		Config:    cfg,
		Clock:     a.deps.Clock,
		Color:     color,
	}

	ctx = log.WithContext(ctx, logger)
	ctx = coreutils.WithHandlerContext(ctx, hc)

	return &session{
		ctx:     ctx,
		name:    name,
		cfg:     cfg,
		hc:      hc,
		verbose: verbose,
		color:   color,
	}, nil
}

// colorEnabled resolves mode against the terminal and NO_COLOR.
func (a *App) colorEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if v, ok := a.deps.LookupEnv("NO_COLOR"); ok && v != "" {
		return false
	}
	return a.deps.IsTerminal(a.deps.Stdout)
}

// report prints err unless the tool already did and converts it to an
// ExitError. It returns nil for a nil err.
func (a *App) report(s *session, err error) *ExitError {
	if err == nil {
		return nil
	}
	var se *coreutils.StatusError
	if !errors.As(err, &se) {
		fmt.Fprintf(a.deps.Stderr, "%s%s\n", s.paint(ErrorStyle, s.name+": "), formatErrorForDisplay(err, s.verbose))
	}
	return &ExitError{Code: coreutils.ExitCode(err), Err: err}
}

// dir returns the working directory for scripts.
func (a *App) dir() (string, error) {
	if a.deps.Dir != "" {
		return a.deps.Dir, nil
	}
	return os.Getwd()
}

// configFile returns the default config file location.
func (a *App) configFile() (string, error) {
	if a.deps.ConfigDir != "" {
		return filepath.Join(a.deps.ConfigDir, config.ConfigFileName+"."+config.ConfigFileExt), nil
	}
	return config.FilePath()
}

func (s *session) paint(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

// formatErrorForDisplay formats an error for user-facing output, with
// suggestions for an ActionableError.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
