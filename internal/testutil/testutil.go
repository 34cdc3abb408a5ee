// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// MemFs returns an in-memory filesystem holding files, keyed by path. Parent
// directories are created as needed.
func MemFs(t testing.TB, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	WriteFiles(t, fsys, files)
	return fsys
}

// WriteFiles writes each entry of files into fsys. A key ending in "/"
// creates an empty directory.
func WriteFiles(t testing.TB, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if name[len(name)-1] == '/' {
			if err := fsys.MkdirAll(name, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", name, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := afero.WriteFile(fsys, name, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// MustSetenv sets the environment variable key to value.
// It returns a cleanup function that restores the original value (or unsets it).
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() { restoreEnv(t, key, originalValue, hadValue) }
}

// MustUnsetenv unsets the environment variable key.
// It returns a cleanup function that restores the original value (if any).
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return func() { restoreEnv(t, key, originalValue, hadValue) }
}

func restoreEnv(t testing.TB, key, value string, had bool) {
	var err error
	if had {
		err = os.Setenv(key, value)
	} else {
		err = os.Unsetenv(key)
	}
	if err != nil {
		t.Errorf("failed to restore env %s: %v", key, err)
	}
}
