// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zhang722/command-line-go/internal/coreutils"
)

const (
	flagColor   = "color"
	flagVerbose = "verbose"
	flagConfig  = "config"
)

// globalOptions are the flags every binary accepts in addition to the
// tool's own.
type globalOptions struct {
	color      string
	verbose    bool
	configPath string
}

// addGlobalFlags registers the global flags on fs. None has a shorthand so
// they never shadow a tool flag such as grepr -v.
func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVar(&opts.color, flagColor, "", "colorize output: auto, always or never (default from config)")
	fs.BoolVar(&opts.verbose, flagVerbose, false, "enable debug logging and detailed errors")
	fs.StringVar(&opts.configPath, flagConfig, "", "config file (default is $XDG_CONFIG_HOME/command-line-go/config.cue)")
}

// merge returns o with every field set in other taking precedence.
func (o globalOptions) merge(other globalOptions) globalOptions {
	if other.color != "" {
		o.color = other.color
	}
	if other.verbose {
		o.verbose = true
	}
	if other.configPath != "" {
		o.configPath = other.configPath
	}
	return o
}

// splitGlobalFlags removes the global flags from args and returns them
// separately. Tool commands are built from the loaded config, so the global
// flags have to be known before the tool's own flags can be parsed.
//
// Arguments are scanned the way cobra parses them: flags may follow
// operands, scanning stops at "--", and the value of a tool flag listed in
// toolFlags is never taken for a global flag ("cutr -d --color" keeps
// "--color" as the delimiter). An operand that looks like a global flag
// goes after "--", as for any other flag-shaped operand.
func splitGlobalFlags(args []string, toolFlags []coreutils.FlagInfo) (globalOptions, []string, error) {
	var opts globalOptions
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			rest = append(rest, arg)
			continue
		}
		if !strings.HasPrefix(arg, "--") {
			rest = append(rest, arg)
			if shortFlagNeedsValue(arg[1:], toolFlags) && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		switch name {
		case flagVerbose:
			opts.verbose = true
			if hasValue {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return opts, nil, fmt.Errorf("invalid argument %q for --%s: %w", value, name, err)
				}
				opts.verbose = b
			}
		case flagColor, flagConfig:
			if !hasValue {
				if i+1 >= len(args) {
					return opts, nil, fmt.Errorf("flag needs an argument: --%s", name)
				}
				i++
				value = args[i]
			}
			if name == flagColor {
				opts.color = value
			} else {
				opts.configPath = value
			}
		default:
			rest = append(rest, arg)
			if !hasValue && longFlagNeedsValue(name, toolFlags) && i+1 < len(args) {
				i++
				rest = append(rest, args[i])
			}
		}
	}

	return opts, rest, nil
}

// shortFlagNeedsValue reports whether the shorthand cluster (e.g. "nv" of
// "-nv") ends in a flag whose value is the next argument.
func shortFlagNeedsValue(cluster string, toolFlags []coreutils.FlagInfo) bool {
	for i, r := range cluster {
		for _, f := range toolFlags {
			if f.ShortName != string(r) || !f.TakesValue {
				continue
			}
			// "-n5" carries its value inline.
			return i+len(string(r)) == len(cluster)
		}
	}
	return false
}

func longFlagNeedsValue(name string, toolFlags []coreutils.FlagInfo) bool {
	for _, f := range toolFlags {
		if f.Name == name {
			return f.TakesValue
		}
	}
	return false
}
