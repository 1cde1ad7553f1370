package main

import (
	"os"

	"github.com/opencode-ai/themekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
