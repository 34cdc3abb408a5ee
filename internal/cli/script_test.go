// SPDX-License-Identifier: MPL-2.0

package cli_test

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/zhang722/command-line-go/internal/cli"
	"github.com/zhang722/command-line-go/internal/coreutils"
)

// TestMain lets the scripts in testdata/script run every binary as a
// subprocess of the test binary.
func TestMain(m *testing.M) {
	commands := map[string]func(){
		"toolbox": cli.ExecuteToolbox,
	}
	for _, name := range coreutils.DefaultRegistry.Names() {
		commands[name] = func() { cli.Execute(name) }
	}
	testscript.Main(m, commands)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
