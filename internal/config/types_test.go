// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorMode_Validate(t *testing.T) {
	t.Parallel()

	for _, m := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		assert.NoError(t, m.Validate(), m)
	}

	err := ColorMode("sometimes").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidColorMode))
	assert.Contains(t, err.Error(), `"sometimes"`)
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		UI:   UIConfig{Color: "x"},
		Head: HeadConfig{Lines: -1},
		Tail: TailConfig{Lines: "abc"},
		Cal:  CalConfig{WeekStart: "friday"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var ice *InvalidConfigError
	require.ErrorAs(t, err, &ice)
	assert.Len(t, ice.FieldErrors, 4)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, ErrInvalidWeekStart))
	assert.Contains(t, err.Error(), "head.lines")
}

func TestConfig_TailOffsetFallback(t *testing.T) {
	t.Parallel()

	cfg := &Config{Tail: TailConfig{Lines: "bogus"}}
	assert.Equal(t, 10, cfg.TailOffset().N)
}
