// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/zhang722/command-line-go/internal/issue"
	"github.com/zhang722/command-line-go/pkg/cueutil"
)

const (
	// AppName names the configuration directory.
	AppName = "command-line-go"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides: CLGO_HEAD_LINES=20.
	EnvPrefix = "CLGO"
)

//go:embed config_schema.cue
var configSchema []byte

// Dir returns the configuration directory: %APPDATA% on Windows,
// ~/Library/Application Support on macOS and $XDG_CONFIG_HOME (default
// ~/.config) elsewhere, each followed by AppName.
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName), nil
}

// FilePath returns the default config file location inside Dir.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions resolves, validates and decodes the configuration. It
// returns the path of the file that was read, or "" when only defaults and
// the environment contributed.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := resolvePath(fsys, opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadCUEIntoViper(fsys, v, path); err != nil {
			return nil, "", loadError(path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", loadError(path, fmt.Errorf("failed to decode config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", loadError(path, err)
	}

	return &cfg, path, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("ui.color", string(d.UI.Color))
	v.SetDefault("ui.verbose", d.UI.Verbose)
	v.SetDefault("head.lines", d.Head.Lines)
	v.SetDefault("tail.lines", d.Tail.Lines)
	v.SetDefault("cal.week_start", string(d.Cal.WeekStart))
	v.SetDefault("ls.all", d.Ls.All)
	v.SetDefault("find.gitignore", d.Find.Gitignore)
}

// resolvePath picks the file to read: an explicit path (which must exist),
// then config.cue in the config directory, then ./config.cue.
func resolvePath(fsys afero.Fs, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(fsys, opts.ConfigFilePath) {
			return "", loadError(opts.ConfigFilePath, fmt.Errorf("config file not found: %w", fs.ErrNotExist))
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = Dir(); err != nil {
			return "", err
		}
	}

	name := ConfigFileName + "." + ConfigFileExt
	for _, candidate := range []string{filepath.Join(dir, name), name} {
		if fileExists(fsys, candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against #Config and merges it over
// the defaults. Environment variables still win over file values.
func loadCUEIntoViper(fsys afero.Fs, v *viper.Viper, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	m, err := cueutil.DecodeMap(configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func loadError(path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err)
	if errors.Is(err, fs.ErrNotExist) {
		ctx.WithSuggestion("Verify the file path is correct")
	} else {
		ctx.WithSuggestions(
			"Check that the file contains valid CUE syntax",
			"Compare your values with 'toolbox config show'",
		)
	}
	return ctx.BuildError()
}

func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// CreateDefault writes GenerateCUE(DefaultConfig()) to path unless a file is
// already there. It reports whether a file was written.
func CreateDefault(fsys afero.Fs, path string) (bool, error) {
	if fileExists(fsys, path) {
		return false, nil
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
