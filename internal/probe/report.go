package probe

import (
	"time"

	"github.com/lukasbecvar/file-probe/internal/media"
)

// Category is the semantic type assigned to an inspected path. The set is
// closed; a target receives exactly one value and it is never revised.
type Category string

// All categories the classifier can assign.
const (
	CategoryDirectory     Category = "Directory"
	CategoryImage         Category = "Image"
	CategoryVideo         Category = "Video"
	CategoryAudio         Category = "Audio"
	CategoryText          Category = "Text"
	CategoryDocument      Category = "Document"
	CategoryArchive       Category = "Archive"
	CategoryBinary        Category = "Binary"
	CategoryBrokenSymlink Category = "Broken Symlink"
	CategoryUnknown       Category = "Unknown"
)

// ChecksumUnavailable marks a checksum field whose file could not be read.
// A digest is never fabricated from partial data.
const ChecksumUnavailable = "Unavailable"

// SymlinkFacts describes the symlink status of the inspected path itself.
type SymlinkFacts struct {
	// IsSymlink reports whether the path is a symbolic link.
	IsSymlink bool
	// Target is the resolved link target. Empty if not a symlink or if
	// resolution failed.
	Target string
	// Err holds the resolution failure detail, mutually exclusive with Target.
	Err string
}

// Ownership holds resolved owner and group names.
type Ownership struct {
	Owner string
	Group string
}

// Timestamps holds pre-formatted access, modify and change times.
type Timestamps struct {
	Access string
	Modify string
	Change string
}

// FileDetail holds per-file facts for a regular file target.
type FileDetail struct {
	// SizeBytes is the file size, zero when unreadable.
	SizeBytes uint64
	// SizeHuman is SizeBytes rendered via FormatSize.
	SizeHuman string
	// Checksum is 64 lowercase hex characters, or ChecksumUnavailable.
	Checksum string
	// Resolution is "{width}x{height}" when the media prober succeeded.
	Resolution string
	// Metadata is a free-form media summary when the prober succeeded.
	Metadata string
	// Duration is a human-rendered duration when the prober succeeded.
	Duration string
}

// DirectoryDetail holds the recursive aggregate for a directory target.
type DirectoryDetail struct {
	// TotalSizeBytes sums all regular files anywhere in the subtree.
	// Symlinked subdirectories are never entered.
	TotalSizeBytes uint64
	// TotalSizeHuman is TotalSizeBytes rendered via FormatSize.
	TotalSizeHuman string
	// FileCount is the number of regular files found.
	FileCount uint64
	// DirectoryCount is the number of subdirectories, excluding the root.
	DirectoryCount uint64
}

// Report is the immutable result of one inspection. Exactly one of
// FileDetail and DirectoryDetail is set, and only for existing targets that
// resolve to a regular file or a directory respectively.
type Report struct {
	// InputPath is the path as given on the command line.
	InputPath string
	// AbsolutePath is the resolved absolute form of InputPath.
	AbsolutePath string
	// TargetExists reports whether the target (after following links) exists.
	TargetExists bool
	// Type is the assigned category.
	Type Category
	// Symlink describes the path's own symlink status.
	Symlink SymlinkFacts
	// Permissions is the 9-character rwx string, empty when unreadable.
	Permissions string
	// Ownership and Timestamps are nil when the metadata was unreadable.
	Ownership  *Ownership
	Timestamps *Timestamps
	// FileDetail is set for regular files only.
	FileDetail *FileDetail
	// DirectoryDetail is set for directories only.
	DirectoryDetail *DirectoryDetail
	// Warnings lists non-fatal problems in discovery order.
	Warnings []string
}

// warn appends one warning in discovery order.
func (r *Report) warn(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Options configures one inspection and the CLI behavior around it.
type Options struct {
	// Path is the target to inspect.
	Path string
	// Prober answers media introspection queries. Nil selects the
	// built-in prober.
	Prober media.Prober
	// ProgressInterval controls progress callback cadence during
	// directory aggregation.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// JSON indicates whether to render the report as JSON.
	JSON bool
	// Version indicates whether to show version and exit.
	Version bool
}
