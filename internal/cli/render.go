package cli

import (
	"fmt"
	"io"

	"github.com/lukasbecvar/file-probe/internal/probe"
)

// Process-wide read-only ANSI color configuration.
const (
	colorReset = "\033[0m"
	colorKey   = "\033[1;34m"
	colorValue = "\033[1;32m"
	colorError = "\033[1;31m"
)

// textRenderer writes colored key/value lines for one report.
type textRenderer struct {
	out     io.Writer
	errOut  io.Writer
	colored bool
}

func (r textRenderer) pair(key, value string) {
	if r.colored {
		fmt.Fprintf(r.out, "%s%s: %s%s%s\n", colorKey, key, colorValue, value, colorReset)

		return
	}

	fmt.Fprintf(r.out, "%s: %s\n", key, value)
}

func (r textRenderer) problem(message string) {
	if r.colored {
		fmt.Fprintf(r.errOut, "%s%s%s\n", colorError, message, colorReset)

		return
	}

	fmt.Fprintln(r.errOut, message)
}

// PrintText renders the report as human-oriented styled text. Report fields
// go to out; the terminal error and warnings go to errOut. It is a pure view
// with no effect on the report.
func PrintText(report *probe.Report, out, errOut io.Writer, colored bool) error {
	r := textRenderer{out: out, errOut: errOut, colored: colored}

	if !report.TargetExists && !report.Symlink.IsSymlink {
		r.problem("Error: File does not exist!")

		return nil
	}

	r.pair("Path", report.AbsolutePath)
	r.pair("Type", string(report.Type))

	if report.Symlink.IsSymlink {
		r.pair("Symlink", "Yes")

		switch {
		case report.Symlink.Target != "":
			r.pair("Symlink Target", report.Symlink.Target)
		case report.Symlink.Err != "":
			r.pair("Symlink Target", report.Symlink.Err)
		default:
			r.pair("Symlink Target", "Unavailable")
		}
	} else {
		r.pair("Symlink", "No")
	}

	if report.Permissions != "" {
		r.pair("Permissions", report.Permissions)
	}

	if report.Ownership != nil {
		r.pair("Owner", report.Ownership.Owner)
		r.pair("Group", report.Ownership.Group)
	}

	if report.Timestamps != nil {
		r.pair("Last Access Time", report.Timestamps.Access)
		r.pair("Last Modify Time", report.Timestamps.Modify)
		r.pair("Last Change Time", report.Timestamps.Change)
	}

	switch {
	case report.FileDetail != nil:
		renderFileDetail(r, report.FileDetail)
	case report.DirectoryDetail != nil:
		renderDirectoryDetail(r, report.DirectoryDetail)
	}

	for _, warning := range report.Warnings {
		r.problem("Warning: " + warning)
	}

	return nil
}

func renderFileDetail(r textRenderer, detail *probe.FileDetail) {
	r.pair("Size", detail.SizeHuman)
	r.pair("Checksum (SHA-256)", detail.Checksum)

	if detail.Resolution != "" {
		r.pair("Resolution", detail.Resolution)
	}

	if detail.Metadata != "" {
		r.pair("Metadata", detail.Metadata)
	}

	if detail.Duration != "" {
		r.pair("Duration", detail.Duration)
	}
}

func renderDirectoryDetail(r textRenderer, detail *probe.DirectoryDetail) {
	r.pair("Total Size", detail.TotalSizeHuman)
	r.pair("File Count", fmt.Sprintf("%d", detail.FileCount))
	r.pair("Directory Count", fmt.Sprintf("%d", detail.DirectoryCount))
}
