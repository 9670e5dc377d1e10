// Package main provides the docmark CLI.
package main

import (
	"os"

	"github.com/docmark/docmark/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
