package main

import (
	"os"

	"AstroSentinel/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
