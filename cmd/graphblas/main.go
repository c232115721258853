// SPDX-License-Identifier: MIT

// Command graphblas runs graph algorithms on edge-list files through the
// sparse operator families and the reference engine.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/graphblas/cmd/graphblas/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
