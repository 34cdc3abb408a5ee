// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/config"
)

func (a *App) newConfigCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Inspect or create the configuration file",
		GroupID: groupToolbox,
	}
	cmd.AddCommand(
		a.newConfigShowCommand(opts),
		a.newConfigInitCommand(opts),
		a.newConfigPathCommand(opts),
	)
	return cmd
}

func (a *App) newConfigShowCommand(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd, opts)
			if err != nil {
				return err
			}
			out, err := config.Render(s.cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatCUE,
		"output format: "+strings.Join(config.Formats, ", "))
	return cmd
}

func (a *App) newConfigInitCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.session(cmd, opts)
			if err != nil {
				return err
			}
			path := opts.configPath
			if path == "" {
				if path, err = a.configFile(); err != nil {
					return err
				}
			}

			created, err := config.CreateDefault(a.deps.Fs, path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !created {
				fmt.Fprintf(out, "Configuration already exists at %s\n", path)
				return nil
			}
			fmt.Fprintf(out, "%s Created default configuration at %s\n", s.paint(SuccessStyle, "✓"), path)
			return nil
		},
	}
}

func (a *App) newConfigPathCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Long: `Print the configuration file in effect, or the default location
when no file exists yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, active, err := config.LoadWithPath(cmd.Context(), config.LoadOptions{
				ConfigFilePath: opts.configPath,
				ConfigDirPath:  a.deps.ConfigDir,
				Fs:             a.deps.Fs,
			})
			if err != nil {
				return err
			}
			if active == "" {
				if active, err = a.configFile(); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), active)
			return err
		},
	}
}
