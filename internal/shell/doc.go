// SPDX-License-Identifier: MPL-2.0

// Package shell runs POSIX shell scripts with mvdan.cc/sh and dispatches the
// command-line-go tools in-process.
//
// Commands found in the tool registry never leave the process: pipes between
// them are in-memory and every file they open goes through the configured
// afero filesystem. Other commands fall back to host binaries unless
// Options.NoHost is set, in which case they fail with status 127.
package shell
