// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/zhang722/command-line-go/internal/testutil"
)

// testDir is the working directory of every in-memory test filesystem.
const testDir = "/work"

// newTestContext returns a HandlerContext rooted at testDir on a MemMapFs
// holding files (paths relative to testDir), with stdout and stderr captured.
func newTestContext(t *testing.T, files map[string]string) (*HandlerContext, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	abs := make(map[string]string, len(files)+1)
	abs[testDir+"/"] = ""
	for name, content := range files {
		abs[testDir+"/"+name] = content
	}

	var stdout, stderr bytes.Buffer
	hc := &HandlerContext{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Dir:    testDir,
		Fs:     testutil.MemFs(t, abs),
	}
	return hc, &stdout, &stderr
}

// runTool runs the named tool from DefaultRegistry with hc.
func runTool(t *testing.T, hc *HandlerContext, name string, args ...string) error {
	t.Helper()
	ctx := WithHandlerContext(context.Background(), hc)
	return DefaultRegistry.Run(ctx, name, append([]string{name}, args...))
}

func readFile(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// numbered returns "line 1\n" ... "line n\n".
func numbered(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString("line " + strconv.Itoa(i) + "\n")
	}
	return sb.String()
}

func hasFlag(flags []FlagInfo, name string) (FlagInfo, bool) {
	for _, f := range flags {
		if f.Name == name {
			return f, true
		}
	}
	return FlagInfo{}, false
}
