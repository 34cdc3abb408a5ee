// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
)

func (a *App) newExplainCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [ISSUE]",
		Short: "Explain an error and how to fix it",
		Long: `Without an argument, list the known issues. With a slug or number,
print the explanation for that issue.`,
		GroupID: groupToolbox,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return writeIssueList(out, s)
			}

			i, err := findIssue(args[0])
			if err != nil {
				return err
			}
			style := "notty"
			if s.color {
				style = "dark"
			}
			text, err := i.Render(style)
			if err != nil {
				return fmt.Errorf("failed to render issue %s: %w", i.Slug(), err)
			}
			_, err = io.WriteString(out, text)
			return err
		},
	}
}

// findIssue accepts a slug or a numeric id.
func findIssue(arg string) (*issue.Issue, error) {
	if i, ok := issue.Lookup(arg); ok {
		return i, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if i := issue.Get(issue.Id(n)); i != nil {
			return i, nil
		}
	}
	return nil, fmt.Errorf("unknown issue %q, run 'toolbox explain' for the list", arg)
}

func writeIssueList(w io.Writer, s *session) error {
	all := issue.Values()
	width := 0
	for _, i := range all {
		width = max(width, len(i.Slug()))
	}

	var sb strings.Builder
	for _, i := range all {
		fmt.Fprintf(&sb, "%2d  %s  %s\n", i.Id(), s.paint(CmdStyle, fmt.Sprintf("%-*s", width, i.Slug())), i.Title())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
