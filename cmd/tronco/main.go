// Package main is the entry point for the tronco CLI tool.
package main

import (
	"os"

	"github.com/pvmonteiro/tronco/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
