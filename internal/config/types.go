// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zhang722/command-line-go/pkg/selection"
)

const (
	// ColorAuto enables colour when stdout is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colour on.
	ColorAlways ColorMode = "always"
	// ColorNever forces colour off.
	ColorNever ColorMode = "never"

	// WeekStartMonday puts Monday in the first calendar column.
	WeekStartMonday WeekStart = "monday"
	// WeekStartSunday puts Sunday in the first calendar column.
	WeekStartSunday WeekStart = "sunday"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidWeekStart is returned when a WeekStart value is not recognized.
	ErrInvalidWeekStart = errors.New("invalid week start")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorMode selects when output is coloured.
	ColorMode string

	// WeekStart selects the first weekday of calr's grid.
	WeekStart string

	// InvalidConfigError collects every field error found by Config.Validate.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		UI   UIConfig   `json:"ui" toml:"ui" yaml:"ui" mapstructure:"ui"`
		Head HeadConfig `json:"head" toml:"head" yaml:"head" mapstructure:"head"`
		Tail TailConfig `json:"tail" toml:"tail" yaml:"tail" mapstructure:"tail"`
		Cal  CalConfig  `json:"cal" toml:"cal" yaml:"cal" mapstructure:"cal"`
		Ls   LsConfig   `json:"ls" toml:"ls" yaml:"ls" mapstructure:"ls"`
		Find FindConfig `json:"find" toml:"find" yaml:"find" mapstructure:"find"`
	}

	// UIConfig configures presentation shared by every tool.
	UIConfig struct {
		// Color is the default for --color.
		Color ColorMode `json:"color" toml:"color" yaml:"color" mapstructure:"color"`
		// Verbose lowers the log level to debug.
		Verbose bool `json:"verbose" toml:"verbose" yaml:"verbose" mapstructure:"verbose"`
	}

	// HeadConfig holds headr defaults.
	HeadConfig struct {
		Lines int `json:"lines" toml:"lines" yaml:"lines" mapstructure:"lines"`
	}

	// TailConfig holds tailr defaults. Lines uses the same "N" / "+N" syntax
	// as the -n flag.
	TailConfig struct {
		Lines string `json:"lines" toml:"lines" yaml:"lines" mapstructure:"lines"`
	}

	// CalConfig holds calr defaults.
	CalConfig struct {
		WeekStart WeekStart `json:"week_start" toml:"week_start" yaml:"week_start" mapstructure:"week_start"`
	}

	// LsConfig holds lsr defaults.
	LsConfig struct {
		All bool `json:"all" toml:"all" yaml:"all" mapstructure:"all"`
	}

	// FindConfig holds findr defaults.
	FindConfig struct {
		Gitignore bool `json:"gitignore" toml:"gitignore" yaml:"gitignore" mapstructure:"gitignore"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI:   UIConfig{Color: ColorAuto},
		Head: HeadConfig{Lines: 10},
		Tail: TailConfig{Lines: "10"},
		Cal:  CalConfig{WeekStart: WeekStartMonday},
	}
}

// IsValid reports whether m is a known colour mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Validate returns an error wrapping ErrInvalidColorMode for unknown values.
func (m ColorMode) Validate() error {
	if !m.IsValid() {
		return fmt.Errorf("%w %q (valid: auto, always, never)", ErrInvalidColorMode, string(m))
	}
	return nil
}

// IsValid reports whether w is a known week start.
func (w WeekStart) IsValid() bool {
	return w == WeekStartMonday || w == WeekStartSunday
}

// Validate checks the fields CUE does not see once env overrides are applied.
func (c *Config) Validate() error {
	var errs []error
	if err := c.UI.Color.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui.color: %w", err))
	}
	if c.Head.Lines <= 0 {
		errs = append(errs, fmt.Errorf("head.lines: must be positive, got %d", c.Head.Lines))
	}
	if _, err := selection.ParseOffset(c.Tail.Lines); err != nil {
		errs = append(errs, fmt.Errorf("tail.lines: %w", err))
	}
	if !c.Cal.WeekStart.IsValid() {
		errs = append(errs, fmt.Errorf("cal.week_start: %w %q", ErrInvalidWeekStart, string(c.Cal.WeekStart)))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// TailOffset parses Tail.Lines. Validate has already rejected bad values for
// any Config returned by Load.
func (c *Config) TailOffset() selection.Offset {
	off, err := selection.ParseOffset(c.Tail.Lines)
	if err != nil {
		return selection.Offset{Mode: selection.Absolute, N: 10}
	}
	return off
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig followed by the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
