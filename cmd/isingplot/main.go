// Package main provides the isingplot command.
package main

import (
	"os"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
