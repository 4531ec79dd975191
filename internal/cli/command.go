// Package cli wires flag parsing, progress reporting and report rendering
// around the inspection engine.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/lukasbecvar/file-probe/internal/probe"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		file-probe inspects a file or directory and displays detailed information:

		  - Type detection for regular files and directories
		  - Unix-style permissions, ownership, and timestamps
		  - Human-readable size for files and recursive totals for directories
		  - SHA-256 checksum for regular files
		  - Media insights (resolution, channels) where available

		Usage:

			file-probe [flags] <path>

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var options probe.Options

	pflag.BoolVarP(&options.JSON, "json", "j", false, "Emit machine-readable JSON instead of colored text")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	switch pflag.NArg() {
	case 0:
		return usageError(options.JSON, "missing path argument")
	case 1:
		options.Path = pflag.Args()[0]
	default:
		return usageError(options.JSON, fmt.Sprintf("unexpected extra argument: %s", pflag.Args()[1]))
	}

	return logic(options)
}

// usageError reports an argument problem. In JSON mode the machine-readable
// error object goes to stdout and the caller only sets the exit code; in
// text mode the message propagates for the caller to print.
func usageError(jsonMode bool, message string) error {
	if jsonMode {
		if err := PrintJSONError(message, os.Stdout); err != nil {
			return err
		}

		return ErrReported
	}

	return errors.New(message)
}
