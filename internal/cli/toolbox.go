// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/coreutils"
)

const (
	groupTools   = "tools"
	groupToolbox = "toolbox"
)

// newToolboxCommand builds the "toolbox" root: one subcommand per registered
// tool followed by the toolbox's own commands.
func (a *App) newToolboxCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "toolbox",
		Short: "Unix text tools in one binary",
		Long: TitleStyle.Render("toolbox") + SubtitleStyle.Render(" - Unix text tools in one binary") + `

Run a tool with "toolbox <tool> [ARGS...]" or through a link named after it.
Scripts given to "toolbox run" call the tools without starting new processes.`,
		SilenceUsage: true,
	}
	addGlobalFlags(root.PersistentFlags(), opts)

	root.AddGroup(
		&cobra.Group{ID: groupTools, Title: "Tools:"},
		&cobra.Group{ID: groupToolbox, Title: "Toolbox:"},
	)

	for _, name := range a.deps.Registry.Names() {
		tool, _ := a.deps.Registry.Lookup(name)
		root.AddCommand(a.newToolSubcommand(tool, opts))
	}
	root.AddCommand(
		a.newListCommand(opts),
		a.newRunCommand(opts),
		a.newConfigCommand(opts),
		a.newExplainCommand(opts),
		newVersionCommand(),
	)

	return root
}

// newToolSubcommand wraps tool as "toolbox <tool>". Flag parsing is left to
// the tool, which is only built once the config is loaded.
func (a *App) newToolSubcommand(tool coreutils.Command, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:                tool.Name() + " [ARGS...]",
		Short:              tool.Short(),
		GroupID:            groupTools,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			local, rest, err := splitGlobalFlags(args, tool.SupportedFlags())
			if err != nil {
				return err
			}
			s, err := a.newSession(cmd.Context(), tool.Name(), opts.merge(local))
			if err != nil {
				return err
			}
			err = tool.Run(s.ctx, append([]string{tool.Name()}, rest...))
			a.exit = a.report(s, err)
			return nil
		},
	}
}

// session resolves the persistent flags for a toolbox subcommand.
func (a *App) session(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	return a.newSession(cmd.Context(), "toolbox", *opts)
}
