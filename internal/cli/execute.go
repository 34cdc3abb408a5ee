// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Execute runs tool as a standalone binary and exits the process with its
// status. It is called by the main package of each tool.
func Execute(tool string) {
	os.Exit(NewApp(Dependencies{}).Run(context.Background(), tool, os.Args[1:]))
}

// ExecuteToolbox runs the multi-call binary. Invoked through a link named
// after a registered tool it behaves as that tool.
func ExecuteToolbox() {
	app := NewApp(Dependencies{})
	if tool, ok := app.toolFromArgv0(os.Args[0]); ok {
		os.Exit(app.Run(context.Background(), tool, os.Args[1:]))
	}
	os.Exit(app.RunToolbox(context.Background(), os.Args[1:]))
}

// toolFromArgv0 maps the program name to a registered tool.
func (a *App) toolFromArgv0(argv0 string) (string, bool) {
	name := strings.TrimSuffix(filepath.Base(argv0), ".exe")
	_, ok := a.deps.Registry.Lookup(name)
	return name, ok
}
