package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// dirCollector accumulates aggregate statistics from concurrent fastwalk
// callbacks using a mutex.
type dirCollector struct {
	mu             sync.Mutex // Protect concurrent access
	totalSizeBytes uint64
	fileCount      uint64
	directoryCount uint64
	warnings       []string
}

// addFile records one regular file. A zero size is used when the size was
// unreadable; the warning is recorded separately.
func (c *dirCollector) addFile(size uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fileCount++
	c.totalSizeBytes += size
}

// addDirectory records one confirmed subdirectory.
func (c *dirCollector) addDirectory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.directoryCount++
}

// warn appends one warning in discovery order.
func (c *dirCollector) warn(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// snapshot returns the running counters for progress reporting.
func (c *dirCollector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int64(c.fileCount), int64(c.totalSizeBytes)
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is
// done.
func startProgressReporter(ctx context.Context, c *dirCollector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// aggregateDirectory walks the subtree under root and tallies total size,
// file count and directory count. It never fails: every per-entry problem is
// folded into a warning and traversal continues. Permission-denied entries
// are skipped without a warning so partially-inaccessible trees stay useful.
//
// Symlinks are resolved for counting, so a link to a regular file counts as
// a file and a link to a directory counts as a directory, but symlinked
// directories are never entered. That bounds traversal even when links form
// cycles, and guarantees each filesystem entry is visited exactly once.
func aggregateDirectory(
	ctx context.Context,
	root string,
	progressHook func(int64, int64),
	interval time.Duration,
) (DirectoryDetail, []string) {
	collector := &dirCollector{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, interval)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil // Silently skip inaccessible entries
			}

			collector.warn("Directory traversal warning: %v", err)

			return nil
		}

		// The root itself contributes to neither counter.
		if path == root {
			return nil
		}

		entryType := d.Type()

		if entryType&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				if errors.Is(statErr, fs.ErrPermission) {
					return nil
				}

				collector.warn("Unable to classify %s: %v", path, statErr)

				return nil
			}

			switch {
			case info.IsDir():
				collector.addDirectory()
			case info.Mode().IsRegular():
				collector.addFile(uint64(info.Size()))
			}

			return nil
		}

		if entryType.IsDir() {
			collector.addDirectory()

			return nil
		}

		if !entryType.IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			// Still a regular file per the listing; count it with zero size.
			collector.addFile(0)
			collector.warn("Unable to read size of %s: %v", path, infoErr)

			return nil
		}

		collector.addFile(uint64(info.Size()))

		return nil
	})
	if walkErr != nil {
		collector.warn("Unable to traverse directory: %v", walkErr)
	}

	collector.mu.Lock()
	defer collector.mu.Unlock()

	detail := DirectoryDetail{
		TotalSizeBytes: collector.totalSizeBytes,
		TotalSizeHuman: FormatSize(collector.totalSizeBytes),
		FileCount:      collector.fileCount,
		DirectoryCount: collector.directoryCount,
	}

	return detail, collector.warnings
}
