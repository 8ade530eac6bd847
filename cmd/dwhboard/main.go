package main

import (
	"os"

	"github.com/MartnzGO/Adattarhaz/cmd/dwhboard/commands"
)

// main is the entry point for the dashboard CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
