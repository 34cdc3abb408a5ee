// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/issue"
	"github.com/zhang722/command-line-go/internal/shell"
)

func (a *App) newRunCommand(opts *globalOptions) *cobra.Command {
	var (
		script string
		noHost bool
	)

	cmd := &cobra.Command{
		Use:   "run [-c SCRIPT | FILE] [ARG...]",
		Short: "Run a shell script with the tools built in",
		Long: `Run a POSIX shell script in the built-in interpreter.

The tools are called in-process; other commands run from the host unless
--no-host is given. With neither -c nor FILE the script is read from stdin.
Remaining arguments become $1, $2 and so on.`,
		GroupID: groupToolbox,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.session(cmd, opts)
			if err != nil {
				return err
			}

			name, params := "-c", args
			if !cmd.Flags().Changed("command") {
				name, params, script, err = a.readScript(args)
				if err != nil {
					return err
				}
			}

			dir, err := a.dir()
			if err != nil {
				return err
			}
			sh := shell.New(shell.Options{
				Stdin:    a.deps.Stdin,
				Stdout:   a.deps.Stdout,
				Stderr:   a.deps.Stderr,
				Dir:      dir,
				Params:   params,
				Fs:       a.deps.Fs,
				Config:   s.cfg,
				Clock:    a.deps.Clock,
				Color:    s.color,
				NoHost:   noHost,
				Registry: a.deps.Registry,
			})

			code, err := sh.Run(s.ctx, script, name)
			if err != nil {
				return err
			}
			if code != 0 {
				a.exit = &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&script, "command", "c", "", "run SCRIPT instead of reading a file")
	cmd.Flags().BoolVar(&noHost, "no-host", false, "do not fall back to host binaries")
	// Flags after FILE belong to the script.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// readScript loads the script named by args[0], or stdin when there is none
// or it is "-".
func (a *App) readScript(args []string) (name string, params []string, script string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(a.deps.Stdin)
		if err != nil {
			return "", nil, "", err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		return "stdin", args, string(data), nil
	}

	data, err := afero.ReadFile(a.deps.Fs, args[0])
	if err != nil {
		return "", nil, "", issue.NewErrorContext().
			WithOperation("read script").
			WithResource(args[0]).
			WithIssue(issue.FileOpenFailedId).
			Wrap(err).
			BuildError()
	}
	return args[0], args[1:], string(data), nil
}
