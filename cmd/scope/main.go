package main

import (
	"os"

	"github.com/forzencookie/scope-ai-sub007/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
