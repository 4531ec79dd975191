package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lukasbecvar/file-probe/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		// Anything the CLI already rendered only needs the exit code.
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
