// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// FileProcessor processes a single reader with file context.
//   - r: the input stream to process
//   - filename: the argument as given ("-" for stdin)
//   - index: 0-based position of the argument
//   - total: number of arguments (1 when reading stdin by default)
type FileProcessor func(r io.Reader, filename string, index, total int) error

// ProcessFilesOrStdin runs processor over each named input, or over stdin
// when names is empty. "-" names stdin.
//
// An input that cannot be opened is reported on stderr as
// "<cmd>: <file>: <reason>" and skipped, and the call ends with a
// *StatusError{Code: 1} once every input has been tried. Errors returned by
// processor stop the loop.
func ProcessFilesOrStdin(ctx context.Context, hc *HandlerContext, names []string, cmdName string, processor FileProcessor) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	failed := false
	for i, name := range names {
		err := processFile(hc, name, func(r io.Reader) error {
			return processor(r, name, i, len(names))
		})
		var oe *openError
		switch {
		case errors.As(err, &oe):
			reportOpenError(ctx, hc, cmdName, name, oe.err)
			failed = true
		case err != nil:
			return err
		}
	}

	if failed {
		return &StatusError{Code: 1}
	}
	return nil
}

// openError marks failures that happened before the processor ran.
type openError struct{ err error }

func (e *openError) Error() string { return e.err.Error() }

func (e *openError) Unwrap() error { return e.err }

// processFile opens name through hc.Fs and calls fn, aggregating the close
// error via named return.
func processFile(hc *HandlerContext, name string, fn func(r io.Reader) error) (err error) {
	if name == "-" {
		return fn(hc.Stdin)
	}

	f, err := openFile(hc, name)
	if err != nil {
		return &openError{err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(f)
}

// openFile opens a regular file for reading. Directories are rejected up
// front so the error names the real problem.
func openFile(hc *HandlerContext, name string) (afero.File, error) {
	path := hc.resolve(name)
	info, err := hc.Fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errIsDirectory
	}
	return hc.Fs.Open(path)
}

var errIsDirectory = errors.New("is a directory")

// reportOpenError writes "<cmd>: <name>: <reason>" to stderr. The path
// already named by the message is stripped from *fs.PathError.
func reportOpenError(ctx context.Context, hc *HandlerContext, cmdName, name string, err error) {
	err = unwrapPathError(err)
	fmt.Fprintf(hc.Stderr, "%s: %s: %v\n", cmdName, name, err)
	log.FromContext(ctx).Debug("input skipped", "cmd", cmdName, "file", name, "err", err)
}

// unwrapPathError drops the op and path of an *fs.PathError, which callers
// already print themselves.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
