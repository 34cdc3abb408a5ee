// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/zhang722/command-line-go/internal/config"
	"github.com/zhang722/command-line-go/internal/testutil"
)

type stubProvider struct {
	cfg *config.Config
	err error
}

func (p stubProvider) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.cfg == nil {
		return config.DefaultConfig(), nil
	}
	return p.cfg, nil
}

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestApp returns an App on a MemMapFs seeded with files, reading stdin
// and never seeing a terminal.
func newTestApp(t *testing.T, provider config.Provider, files map[string]string, stdin string) *testApp {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config:     provider,
		Fs:         testutil.MemFs(t, files),
		Clock:      testutil.NewFakeClock(time.Date(2026, time.February, 11, 9, 0, 0, 0, time.UTC)),
		Stdin:      strings.NewReader(stdin),
		Stdout:     &stdout,
		Stderr:     &stderr,
		Dir:        t.TempDir(),
		ConfigDir:  "/cfg",
		LookupEnv:  func(string) (string, bool) { return "", false },
		IsTerminal: func(io.Writer) bool { return false },
	})
	return &testApp{App: app, stdout: &stdout, stderr: &stderr}
}

func numberedLines(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(strings.Repeat("x", i))
		sb.WriteByte('\n')
	}
	return sb.String()
}
