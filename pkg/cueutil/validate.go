// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the size of a user CUE file (1MB).
const DefaultMaxFileSize int64 = 1 << 20

type (
	options struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures Validate.
	Option func(*options)
)

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithConcrete controls whether every field must have a concrete value after
// unification. Defaults to true.
func WithConcrete(concrete bool) Option {
	return func(o *options) { o.concrete = concrete }
}

// WithFilename names the input in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// Validate compiles schema, unifies the definition at defPath with data and
// validates the result. The unified value is returned for decoding.
func Validate(schema, data []byte, defPath string, opts ...Option) (cue.Value, error) {
	o := options{maxFileSize: DefaultMaxFileSize, concrete: true, filename: "<input>"}
	for _, opt := range opts {
		opt(&o)
	}

	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return cue.Value{}, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	def := schemaValue.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", defPath, def.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if userValue.Err() != nil {
		return cue.Value{}, FormatError(userValue.Err(), o.filename)
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return cue.Value{}, FormatError(err, o.filename)
	}
	return unified, nil
}

// DecodeMap validates data like Validate and decodes the result into a plain
// map, the shape viper.MergeConfigMap expects.
func DecodeMap(schema, data []byte, defPath string, opts ...Option) (map[string]any, error) {
	v, err := Validate(schema, data, defPath, opts...)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := v.Decode(&m); err != nil {
		o := options{filename: "<input>"}
		for _, opt := range opts {
			opt(&o)
		}
		return nil, FormatError(err, o.filename)
	}
	return m, nil
}
