// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestFakeClock(t *testing.T) {
	t.Parallel()

	c := NewFakeClock(time.Time{})
	if got := c.Now(); !got.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("default time = %v", got)
	}

	c.Advance(36 * time.Hour)
	if got := c.Now().Day(); got != 2 {
		t.Errorf("after Advance day = %d, want 2", got)
	}

	want := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	c.Set(want)
	if !c.Now().Equal(want) {
		t.Errorf("after Set = %v, want %v", c.Now(), want)
	}
}

func TestMemFs(t *testing.T) {
	t.Parallel()

	fsys := MemFs(t, map[string]string{
		"/a/b/c.txt": "hello",
		"/empty/":    "",
	})

	data, err := afero.ReadFile(fsys, "/a/b/c.txt")
	if err != nil || string(data) != "hello" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	if ok, _ := afero.IsDir(fsys, "/empty"); !ok {
		t.Error("/empty should be a directory")
	}
}

func TestMustSetenv(t *testing.T) {
	const key = "CLGO_TESTUTIL_PROBE"
	cleanup := MustUnsetenv(t, key)
	defer cleanup()

	restore := MustSetenv(t, key, "1")
	if os.Getenv(key) != "1" {
		t.Fatal("MustSetenv did not set the variable")
	}
	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Error("cleanup should unset a variable that was not set before")
	}
}
