// Command trackboard is the song library dashboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/muse-labs/trackboard/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort: a missing .env is the normal case.
	_ = godotenv.Load()

	return cli.NewRootCmd(version).Execute()
}
