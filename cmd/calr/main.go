// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/zhang722/command-line-go/internal/cli"

func main() {
	cli.Execute("calr")
}
