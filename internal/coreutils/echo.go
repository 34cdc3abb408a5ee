// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// echoCommand implements echor.
type echoCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newEchoCommand())
}

func newEchoCommand() *echoCommand {
	c := &echoCommand{}
	c.name = "echor"
	c.short = "Print arguments separated by spaces"
	c.build = c.cobra
	return c
}

func (c *echoCommand) cobra(hc *HandlerContext) *cobra.Command {
	var omitNewline bool

	cmd := &cobra.Command{
		Use:  "TEXT...",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ending := "\n"
			if omitNewline {
				ending = ""
			}
			_, err := fmt.Fprint(hc.Stdout, strings.Join(args, " ")+ending)
			return err
		},
	}
	// Everything after the first word is text, so "echor a -n" prints "a -n".
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&omitNewline, "no-newline", "n", false, "do not print the trailing newline")
	return cmd
}
