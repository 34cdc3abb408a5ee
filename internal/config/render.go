// SPDX-License-Identifier: MPL-2.0

package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatCUE  = "cue"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the formats accepted by Render.
var Formats = []string{FormatCUE, FormatTOML, FormatYAML, FormatJSON}

// Render serialises cfg in the given format.
func Render(cfg *Config, format string) ([]byte, error) {
	switch format {
	case FormatCUE:
		return []byte(GenerateCUE(cfg)), nil
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (valid: %s)", format, strings.Join(Formats, ", "))
	}
}

// GenerateCUE renders cfg as a config.cue file that passes the schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// command-line-go configuration\n")
	sb.WriteString("// Environment variables override these values, e.g. CLGO_HEAD_LINES=20.\n\n")

	fmt.Fprintf(&sb, "ui: {\n\tcolor:   %q\n\tverbose: %v\n}\n\n", cfg.UI.Color, cfg.UI.Verbose)
	fmt.Fprintf(&sb, "head: lines: %d\n", cfg.Head.Lines)
	fmt.Fprintf(&sb, "tail: lines: %q\n", cfg.Tail.Lines)
	fmt.Fprintf(&sb, "cal: week_start: %q\n", cfg.Cal.WeekStart)
	fmt.Fprintf(&sb, "ls: all: %v\n", cfg.Ls.All)
	fmt.Fprintf(&sb, "find: gitignore: %v\n", cfg.Find.Gitignore)

	return sb.String()
}
