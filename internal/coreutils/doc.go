// SPDX-License-Identifier: MPL-2.0

// Package coreutils implements the command-line-go text tools.
//
// # Tools
//
//   - calr: display a month or a whole year
//   - catr: concatenate files, optionally numbering lines
//   - cutr: select bytes, characters or delimited fields
//   - echor: print arguments
//   - findr: walk directory trees with name and type filters
//   - grepr: print lines matching a pattern
//   - headr: print the first lines or bytes
//   - lsr: list directory entries
//   - tailr: print the last lines or bytes, or everything from an offset
//   - uniqr: collapse adjacent equal lines
//   - wcr: count lines, words, characters and bytes
//
// Every tool implements Command and registers itself in DefaultRegistry. The
// same value backs the standalone binaries, "toolbox <tool>" and the virtual
// shell's exec handler.
//
// # Handler Context
//
// Tools never touch the process directly. Streams, the working directory,
// the filesystem (afero), config defaults and the clock come from the
// HandlerContext stored in the context:
//
//	ctx = coreutils.WithHandlerContext(ctx, &coreutils.HandlerContext{
//		Stdout: &buf,
//		Fs:     afero.NewMemMapFs(),
//	})
//	err := coreutils.DefaultRegistry.Run(ctx, "headr", []string{"headr", "-n", "3", "notes.txt"})
//
// # Errors and Exit Status
//
// Inputs that cannot be opened are reported on stderr as
//
//	headr: missing.txt: file does not exist
//
// and skipped. The tool then returns a *StatusError carrying the exit status.
// Usage errors (bad selectors, offsets, patterns, dates) are returned as
// *issue.ActionableError values linked to the issue catalog. ExitCode maps
// any returned error to a process status.
package coreutils
