// SPDX-License-Identifier: MPL-2.0

// Package config loads tool defaults with Viper, using CUE as the file format.
//
// The file is config.cue in Dir() (or ./config.cue), validated against the
// embedded config_schema.cue. Environment variables prefixed with CLGO_
// override file values, and Config.Validate rechecks the merged result.
package config
