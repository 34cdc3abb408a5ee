// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"mvdan.cc/sh/v3/interp"

	"github.com/zhang722/command-line-go/internal/config"
)

type (
	// Clock supplies the current time. calr asks it for "today".
	Clock interface {
		Now() time.Time
	}

	// HandlerContext provides everything a tool touches outside its
	// arguments. Zero fields fall back to process defaults.
	HandlerContext struct {
		// Stdin is the input stream for the command.
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr is the error output stream for the command.
		Stderr io.Writer
		// Dir is the directory relative paths are resolved against.
		Dir string
		// LookupEnv retrieves environment variables.
		LookupEnv func(string) (string, bool)
		// Fs is the filesystem every file access goes through.
		Fs afero.Fs
		// Config supplies flag defaults.
		Config *config.Config
		// Clock supplies the current time.
		Clock Clock
		// Color enables highlighting in tool output.
		Color bool
	}

	systemClock struct{}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

func (systemClock) Now() time.Time { return time.Now() }

// ExtractHandlerContext builds a HandlerContext from the mvdan/sh handler
// context. It must only be called from inside an interp handler.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdin:  hc.Stdin,
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		},
	}
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext returns the HandlerContext stored with
// WithHandlerContext, or one extracted from the shell interpreter. Missing
// fields are filled with defaults.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext)
	if !ok {
		hc = ExtractHandlerContext(ctx)
	}
	return hc.withDefaults()
}

// withDefaults returns a copy of hc with every nil field set.
func (hc *HandlerContext) withDefaults() *HandlerContext {
	out := *hc
	if out.Stdin == nil {
		out.Stdin = os.Stdin
	}
	if out.Stdout == nil {
		out.Stdout = os.Stdout
	}
	if out.Stderr == nil {
		out.Stderr = os.Stderr
	}
	if out.LookupEnv == nil {
		out.LookupEnv = os.LookupEnv
	}
	if out.Fs == nil {
		out.Fs = afero.NewOsFs()
	}
	if out.Config == nil {
		out.Config = config.DefaultConfig()
	}
	if out.Clock == nil {
		out.Clock = systemClock{}
	}
	return &out
}

// cfg returns the config, or defaults when none is set. Cobra builders use
// it because SupportedFlags builds commands from a bare HandlerContext.
func (hc *HandlerContext) cfg() *config.Config {
	if hc.Config == nil {
		return config.DefaultConfig()
	}
	return hc.Config
}

// resolve makes path absolute against Dir. "-" is returned unchanged.
func (hc *HandlerContext) resolve(path string) string {
	if path == "-" || filepath.IsAbs(path) || hc.Dir == "" {
		return path
	}
	return filepath.Join(hc.Dir, path)
}
