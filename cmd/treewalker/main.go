package main

import (
	"os"

	"github.com/simonhull/firebird-suite/treewalker/internal/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
