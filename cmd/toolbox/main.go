// SPDX-License-Identifier: MPL-2.0

// Command toolbox bundles every text tool in one binary. Linked or copied
// under a tool's name (headr, grepr, ...) it behaves as that tool.
package main

import "github.com/zhang722/command-line-go/internal/cli"

func main() {
	cli.ExecuteToolbox()
}
