// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type (
	// Command is one text tool. The same value serves the standalone binary,
	// "toolbox <tool>" and the virtual shell.
	Command interface {
		// Name returns the tool name (e.g. "headr").
		Name() string

		// Short returns a one-line description.
		Short() string

		// Run executes the tool. args[0] is the tool name and args[1:] are
		// its arguments. IO, working directory, filesystem and config come
		// from the HandlerContext in ctx.
		Run(ctx context.Context, args []string) error

		// Cobra builds a fresh cobra command bound to hc.
		Cobra(hc *HandlerContext) *cobra.Command

		// SupportedFlags describes the tool's flags for "toolbox list".
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag.
	FlagInfo struct {
		// Name is the long flag name without dashes (e.g. "lines").
		Name string
		// ShortName is the single-character alias, empty if none.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g. -n 10).
		TakesValue bool
	}

	// baseCommand implements Command around a cobra constructor. Each tool
	// embeds it and supplies build.
	baseCommand struct {
		name  string
		short string
		build func(hc *HandlerContext) *cobra.Command
	}
)

// Name returns the command name.
func (b *baseCommand) Name() string {
	return b.name
}

// Short returns the one-line description.
func (b *baseCommand) Short() string {
	return b.short
}

// Cobra builds the tool's cobra command. Flag defaults that come from config
// are read from hc, so every call returns fresh state.
func (b *baseCommand) Cobra(hc *HandlerContext) *cobra.Command {
	cmd := b.build(hc)
	cmd.Use = b.name + " " + cmd.Use
	cmd.Short = b.short
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetIn(hc.Stdin)
	cmd.SetOut(hc.Stdout)
	cmd.SetErr(hc.Stderr)
	return cmd
}

// Run parses args[1:] with the tool's flags and executes it.
func (b *baseCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)
	cmd := b.Cobra(hc)
	rest := []string{}
	if len(args) > 1 {
		rest = args[1:]
	}
	cmd.SetArgs(rest)
	return cmd.ExecuteContext(ctx)
}

// SupportedFlags lists the flags of a freshly built command.
func (b *baseCommand) SupportedFlags() []FlagInfo {
	var infos []FlagInfo
	b.build(&HandlerContext{}).Flags().VisitAll(func(f *pflag.Flag) {
		infos = append(infos, FlagInfo{
			Name:        f.Name,
			ShortName:   f.Shorthand,
			Description: f.Usage,
			TakesValue:  f.Value.Type() != "bool",
		})
	})
	return infos
}

// wrapError prefixes err with name, usually the file it concerns. Returns nil
// if err is nil.
func wrapError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
