// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"github.com/spf13/afero"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
	// Fs is the filesystem to read from; nil means the OS filesystem.
	Fs afero.Fs
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider backed by config files.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithPath is Load that also reports which file was read ("" when none).
func LoadWithPath(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
