// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhang722/command-line-go/internal/issue"
	"github.com/zhang722/command-line-go/pkg/selection"
)

const testDir = "/home/u/.config/command-line-go"

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, ColorAuto, cfg.UI.Color)
	assert.False(t, cfg.UI.Verbose)
	assert.Equal(t, 10, cfg.Head.Lines)
	assert.Equal(t, "10", cfg.Tail.Lines)
	assert.Equal(t, WeekStartMonday, cfg.Cal.WeekStart)
	assert.False(t, cfg.Ls.All)
	assert.False(t, cfg.Find.Gitignore)
	assert.NoError(t, cfg.Validate())
}

func TestDir(t *testing.T) {
	SetConfigDirOverride("/tmp/override")
	t.Cleanup(Reset)

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override", dir)

	path, err := FilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/override", "config.cue"), path)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{
		ConfigDirPath: testDir,
		Fs:            afero.NewMemMapFs(),
	})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	file := filepath.Join(testDir, "config.cue")
	fsys := newFs(t, map[string]string{file: `
ui: color: "never"
head: lines: 3
tail: lines: "+2"
cal: week_start: "sunday"
ls: all: true
`})

	cfg, path, err := LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: fsys})
	require.NoError(t, err)
	assert.Equal(t, file, path)
	assert.Equal(t, ColorNever, cfg.UI.Color)
	assert.Equal(t, 3, cfg.Head.Lines)
	assert.Equal(t, selection.Offset{Mode: selection.FromStart, N: 2}, cfg.TailOffset())
	assert.Equal(t, WeekStartSunday, cfg.Cal.WeekStart)
	assert.True(t, cfg.Ls.All)
	assert.False(t, cfg.Find.Gitignore, "unset fields keep their defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	fsys := newFs(t, map[string]string{
		"/etc/clgo.cue":                      "head: lines: 42\n",
		filepath.Join(testDir, "config.cue"): "head: lines: 7\n",
	})

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: "/etc/clgo.cue",
		ConfigDirPath:  testDir,
		Fs:             fsys,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Head.Lines)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	_, err := NewProvider().Load(context.Background(), LoadOptions{
		ConfigFilePath: "/nope.cue",
		Fs:             afero.NewMemMapFs(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var ae *issue.ActionableError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "/nope.cue", ae.Resource)
	assert.Equal(t, issue.ConfigLoadFailedId, ae.Issue)
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "zero head lines", content: "head: lines: 0\n", wantMsg: "head.lines"},
		{name: "bad colour", content: "ui: color: \"rainbow\"\n", wantMsg: "ui.color"},
		{name: "bad tail offset", content: "tail: lines: \"-3\"\n", wantMsg: "tail.lines"},
		{name: "unknown section", content: "grep: perl: true\n", wantMsg: "grep"},
		{name: "syntax error", content: "head: {\n", wantMsg: "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := newFs(t, map[string]string{filepath.Join(testDir, "config.cue"): tt.content})
			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: fsys})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			_, ok := issue.IssueOf(err)
			assert.True(t, ok, "load errors link to the config issue")
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CLGO_HEAD_LINES", "25")
	t.Setenv("CLGO_UI_COLOR", "always")

	fsys := newFs(t, map[string]string{filepath.Join(testDir, "config.cue"): "head: lines: 3\n"})
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: fsys})
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Head.Lines)
	assert.Equal(t, ColorAlways, cfg.UI.Color)
}

func TestLoad_EnvOverrideValidated(t *testing.T) {
	t.Setenv("CLGO_TAIL_LINES", "ten")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: testDir, Fs: afero.NewMemMapFs()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, selection.ErrFormat))
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProvider().Load(ctx, LoadOptions{Fs: afero.NewMemMapFs()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateDefault(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	path := filepath.Join(testDir, "config.cue")

	wrote, err := CreateDefault(fsys, path)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = CreateDefault(fsys, path)
	require.NoError(t, err)
	assert.False(t, wrote, "existing files are left alone")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path, Fs: fsys})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "generated file round-trips through the schema")
}
