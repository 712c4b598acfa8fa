// Package main is the entry point for the govx CLI.
package main

import (
	"os"

	"governance-explorer/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
