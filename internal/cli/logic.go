package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/lukasbecvar/file-probe/internal/probe"
)

// ErrReported marks failures the CLI has already rendered to the user, such
// as a nonexistent target or a JSON-mode usage error. Callers should only
// map it to a nonzero exit code, never print it.
var ErrReported = errors.New("error already reported")

func logic(options probe.Options) error {
	enableProgress := !options.JSON &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Probing… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	report := probe.Collect(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if options.JSON {
		if err := PrintJSON(report, os.Stdout); err != nil {
			return err
		}
	} else {
		colored := isatty.IsTerminal(os.Stdout.Fd())
		if err := PrintText(report, os.Stdout, os.Stderr, colored); err != nil {
			return err
		}
	}

	if !report.TargetExists && !report.Symlink.IsSymlink {
		return ErrReported
	}

	return nil
}
