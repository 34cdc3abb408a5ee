// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates user CUE files against an embedded schema and
// formats CUE errors with JSON-style paths ("head.lines: invalid value").
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	v, err := cueutil.Validate(schema, data, "#Config",
//	    cueutil.WithFilename(path),
//	    cueutil.WithConcrete(false),
//	)
package cueutil
