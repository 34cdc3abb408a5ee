// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"strings"
	"testing"
	"time"

	"github.com/zhang722/command-line-go/internal/config"
	"github.com/zhang722/command-line-go/internal/testutil"
)

var lsFiles = map[string]string{
	"a.txt":   "hello",
	".hidden": "",
	"dir/x":   "",
	"big.bin": strings.Repeat("z", 2048),
}

func TestLsCommand_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "current directory", want: "./a.txt\n./big.bin\n./dir\n"},
		{name: "all", args: []string{"-a"}, want: "./.hidden\n./a.txt\n./big.bin\n./dir\n"},
		{name: "file operand", args: []string{"a.txt"}, want: "a.txt\n"},
		{name: "directory operand", args: []string{"dir"}, want: "dir/x\n"},
		{name: "trailing slash", args: []string{"dir/", "a.txt"}, want: "dir/x\na.txt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, stdout, _ := newTestContext(t, lsFiles)
			if err := runTool(t, hc, "lsr", tt.args...); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLsCommand_AllFromConfig(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := newTestContext(t, lsFiles)
	cfg := config.DefaultConfig()
	cfg.Ls.All = true
	hc.Config = cfg

	if err := runTool(t, hc, "lsr"); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "./.hidden\n") {
		t.Errorf("stdout = %q, want hidden entries", stdout.String())
	}
}

func TestLsCommand_Long(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		args  []string
		now   time.Time
		wants []string
	}{
		{
			name:  "recent file",
			args:  []string{"-l", "a.txt", "big.bin"},
			now:   stamp.Add(24 * time.Hour),
			wants: []string{"    5 Jan  1 10:00 a.txt", " 2048 Jan  1 10:00 big.bin"},
		},
		{
			name:  "old file shows year",
			args:  []string{"-l", "a.txt"},
			now:   stamp.AddDate(1, 0, 0),
			wants: []string{" 5 Jan  1  2020 a.txt"},
		},
		{
			name:  "human sizes",
			args:  []string{"-lh", "a.txt", "big.bin"},
			now:   stamp,
			wants: []string{"   5 B Jan  1 10:00 a.txt", " 2.0 KiB Jan  1 10:00 big.bin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hc, stdout, _ := newTestContext(t, lsFiles)
			hc.Clock = testutil.NewFakeClock(tt.now)
			for _, name := range []string{"a.txt", "big.bin"} {
				if err := hc.Fs.Chtimes(testDir+"/"+name, stamp, stamp); err != nil {
					t.Fatalf("Chtimes(%s) returned error: %v", name, err)
				}
			}

			if err := runTool(t, hc, "lsr", tt.args...); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
			if len(lines) != len(tt.wants) {
				t.Fatalf("got %d lines, want %d: %q", len(lines), len(tt.wants), stdout.String())
			}
			for i, want := range tt.wants {
				if !strings.HasPrefix(lines[i], "-") || !strings.HasSuffix(lines[i], want) {
					t.Errorf("line %d = %q, want a file mode followed by %q", i, lines[i], want)
				}
			}
		})
	}
}

func TestLsCommand_ColorsDirectories(t *testing.T) {
	t.Parallel()

	hc, stdout, _ := newTestContext(t, lsFiles)
	hc.Color = true
	if err := runTool(t, hc, "lsr"); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n") {
		colored := strings.Contains(line, "\x1b[")
		if isDir := strings.Contains(line, "./dir"); colored != isDir {
			t.Errorf("line %q colored = %v", line, colored)
		}
	}
}

func TestLsCommand_MissingOperand(t *testing.T) {
	t.Parallel()

	hc, stdout, stderr := newTestContext(t, lsFiles)
	err := runTool(t, hc, "lsr", "nope", "a.txt")
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
	if stdout.String() != "a.txt\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.String() != "lsr: nope: file does not exist\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}
