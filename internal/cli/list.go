// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/coreutils"
)

func (a *App) newListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List the tools and their flags",
		GroupID: groupToolbox,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd, opts)
			if err != nil {
				return err
			}
			return a.writeToolList(cmd.OutOrStdout(), s)
		},
	}
}

// writeToolList prints every registered tool with its description, followed
// by its flags indented under it.
func (a *App) writeToolList(w io.Writer, s *session) error {
	names := a.deps.Registry.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	indent := strings.Repeat(" ", width+2)

	var sb strings.Builder
	for _, name := range names {
		tool, _ := a.deps.Registry.Lookup(name)
		fmt.Fprintf(&sb, "%s  %s\n",
			s.paint(CmdStyle, fmt.Sprintf("%-*s", width, name)),
			s.paint(SubtitleStyle, tool.Short()))

		flags := tool.SupportedFlags()
		specs := make([]string, len(flags))
		specWidth := 0
		for i, f := range flags {
			specs[i] = flagSpec(f)
			specWidth = max(specWidth, len(specs[i]))
		}
		for i, f := range flags {
			fmt.Fprintf(&sb, "%s%-*s  %s\n", indent, specWidth, specs[i], f.Description)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// flagSpec renders a flag as "-n, --lines VALUE" or "    --gitignore".
func flagSpec(f coreutils.FlagInfo) string {
	usage := "    --" + f.Name
	if f.ShortName != "" {
		usage = "-" + f.ShortName + ", --" + f.Name
	}
	if f.TakesValue {
		usage += " VALUE"
	}
	return usage
}
