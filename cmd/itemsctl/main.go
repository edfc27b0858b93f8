// Package main is the entry point for itemsctl, a command-line client that
// loads and selects items through the same graph as the HTTP service.
package main

import (
	"os"

	"github.com/jsamuelsen11/go-item-loader/cmd/itemsctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
