// File: cmd/flexgrow/main.go
// Package main
// Demonstration CLI for the flexgrow containers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/momentics/flexgrow/cmd/flexgrow/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
