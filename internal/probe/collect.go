package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lukasbecvar/file-probe/internal/media"
	"github.com/lukasbecvar/file-probe/internal/sysmeta"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Collect inspects opt.Path and assembles its report. It never fails: the
// one terminal condition, a target that does not exist and is not a dangling
// symlink, is represented in the report itself (TargetExists false with no
// symlink facts) and every other problem degrades a field and appends a
// warning.
//
// Directory targets are aggregated recursively; progress updates are sent to
// progressHook if provided.
func Collect(ctx context.Context, opt Options, progressHook func(int64, int64)) *Report {
	log := logger{enabled: opt.Debug}

	report := &Report{
		InputPath: opt.Path,
		Type:      CategoryUnknown,
	}

	absolutePath, err := filepath.Abs(opt.Path)
	if err != nil {
		absolutePath = opt.Path
	}

	report.AbsolutePath = absolutePath
	log.printf("[debug]: resolved %q -> %q\n", opt.Path, absolutePath)

	linkInfo, err := os.Lstat(opt.Path)

	switch {
	case err == nil:
		report.Symlink.IsSymlink = linkInfo.Mode()&fs.ModeSymlink != 0
	case !errors.Is(err, fs.ErrNotExist):
		report.warn(fmt.Sprintf("Unable to determine symlink status: %v", err))
	}

	if report.Symlink.IsSymlink {
		if target, err := os.Readlink(opt.Path); err == nil {
			report.Symlink.Target = target
		} else {
			report.Symlink.Err = err.Error()
		}
	}

	// Stat follows symlinks, so it answers for the link target.
	info, statErr := os.Stat(opt.Path)

	switch {
	case statErr == nil:
		report.TargetExists = true
	case !errors.Is(statErr, fs.ErrNotExist):
		report.warn(fmt.Sprintf("Unable to confirm path existence: %v", statErr))
	}

	if !report.TargetExists {
		if report.Symlink.IsSymlink {
			report.Type = CategoryBrokenSymlink
		}

		return report
	}

	report.Permissions = sysmeta.Permissions(info.Mode())

	if owner, group, err := sysmeta.Ownership(opt.Path); err != nil {
		report.warn(fmt.Sprintf("Unable to read ownership metadata: %v", err))
	} else {
		report.Ownership = &Ownership{Owner: owner, Group: group}
	}

	if access, modify, change, err := sysmeta.Timestamps(opt.Path); err != nil {
		report.warn(fmt.Sprintf("Unable to read timestamps: %v", err))
	} else {
		report.Timestamps = &Timestamps{Access: access, Modify: modify, Change: change}
	}

	report.Type = Classify(opt.Path, info.IsDir())
	log.printf("[debug]: classified %q as %s\n", opt.Path, report.Type)

	prober := opt.Prober
	if prober == nil {
		prober = media.StdProber{}
	}

	switch {
	case info.Mode().IsRegular():
		detail, warnings := collectFileDetail(opt.Path, report.Type, prober)
		report.FileDetail = &detail
		report.Warnings = append(report.Warnings, warnings...)
	case info.IsDir():
		detail, warnings := aggregateDirectory(ctx, opt.Path, progressHook, opt.ProgressInterval)
		report.DirectoryDetail = &detail
		report.Warnings = append(report.Warnings, warnings...)
		log.printf("[debug]: aggregated %d files, %d directories, %d bytes\n",
			detail.FileCount, detail.DirectoryCount, detail.TotalSizeBytes)
	}

	return report
}
