// SPDX-License-Identifier: MPL-2.0

// Package cli wires the text tools to their command-line entry points.
//
// Every standalone binary (headr, grepr, ...) calls Execute with its tool
// name. The multi-call toolbox binary calls ExecuteToolbox, which runs a tool
// when invoked through a link named after it and otherwise offers the
// "toolbox" command tree: one subcommand per tool plus list, run, config,
// explain and version.
//
// Both paths share App, the composition root holding the streams,
// filesystem, config provider and clock. App resolves the global flags
// (--color, --verbose, --config), loads configuration, builds the
// per-invocation logger and hands a HandlerContext to the tool.
package cli
