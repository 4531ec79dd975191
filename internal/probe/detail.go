package probe

import (
	"fmt"
	"io"
	"os"

	"github.com/lukasbecvar/file-probe/internal/digest"
	"github.com/lukasbecvar/file-probe/internal/media"
)

// checksumChunkSize is the read size used to stream file contents into the
// digest engine.
const checksumChunkSize = 32 * 1024

// collectFileDetail gathers size, checksum and media facts for a confirmed
// regular file, in that fixed order. Each failing step degrades its field
// and records one warning; later steps never depend on earlier ones
// succeeding.
func collectFileDetail(path string, category Category, prober media.Prober) (FileDetail, []string) {
	var detail FileDetail

	var warnings []string

	info, err := os.Stat(path)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Unable to read file size: %v", err))
	} else {
		detail.SizeBytes = uint64(info.Size())
	}

	detail.SizeHuman = FormatSize(detail.SizeBytes)

	checksum, err := checksumFile(path)
	if err != nil {
		detail.Checksum = ChecksumUnavailable

		warnings = append(warnings, "Unable to compute SHA-256 checksum.")
	} else {
		detail.Checksum = checksum
	}

	switch category {
	case CategoryImage:
		if resolution, ok := prober.ImageResolution(path); ok {
			detail.Resolution = resolution
		} else {
			warnings = append(warnings, "Unable to read image resolution.")
		}

		if metadata, ok := prober.ImageMetadata(path); ok {
			detail.Metadata = metadata
		} else {
			warnings = append(warnings, "Unable to read image metadata.")
		}
	case CategoryVideo:
		if resolution, ok := prober.Resolution(path); ok {
			detail.Resolution = resolution
		} else {
			warnings = append(warnings, "Unable to read video resolution.")
		}

		warnings = collectMediaFacts(path, &detail, prober, warnings)
	case CategoryAudio:
		warnings = collectMediaFacts(path, &detail, prober, warnings)
	}

	return detail, warnings
}

// collectMediaFacts queries the shared audio/video metadata and duration
// facts.
func collectMediaFacts(path string, detail *FileDetail, prober media.Prober, warnings []string) []string {
	if metadata, ok := prober.Metadata(path); ok {
		detail.Metadata = metadata
	} else {
		warnings = append(warnings, "Unable to read media metadata.")
	}

	if duration, ok := prober.Duration(path); ok {
		detail.Duration = duration
	} else {
		warnings = append(warnings, "Unable to read media duration.")
	}

	return warnings
}

// checksumFile streams the file through the digest engine in fixed-size
// chunks and returns the hex digest. Any read failure aborts: partial input
// never produces a digest.
func checksumFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	hasher := digest.New()

	buffer := make([]byte, checksumChunkSize)
	if _, err := io.CopyBuffer(hasher, file, buffer); err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	return hasher.SumHex(), nil
}
