package probe

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// textProbeLength caps how many leading bytes content sniffing samples.
const textProbeLength = 512

// textThreshold is the non-printable ratio above which a sniffed file is
// considered binary.
const textThreshold = 0.3

// Extension tables for the closed taxonomy. Checked in fixed order: image,
// video, audio, text, document, archive. The tables are disjoint, so order
// only matters for maintenance clarity.
//
//nolint:gochecknoglobals // Config constants
var (
	imageExtensions = extensionSet(".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff")
	videoExtensions = extensionSet(".mp4", ".avi", ".mkv", ".mov", ".flv")
	audioExtensions = extensionSet(".mp3", ".wav", ".flac", ".aac", ".ogg")
	textExtensions  = extensionSet(
		".txt", ".csv", ".log", ".json", ".xml", ".html", ".htm", ".css", ".js", ".md", ".ini")
	documentExtensions = extensionSet(".pdf", ".doc", ".docx", ".odt", ".rtf", ".ppt", ".pptx")
	archiveExtensions  = extensionSet(".zip", ".rar", ".7z", ".tar", ".gz")
)

// extensionSet builds a lookup set for lowercased extensions.
func extensionSet(extensions ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[ext] = struct{}{}
	}

	return set
}

// matchesExtension reports whether the path's lowercased extension is in set.
func matchesExtension(path string, set map[string]struct{}) bool {
	_, ok := set[strings.ToLower(filepath.Ext(path))]

	return ok
}

// Classify assigns a category to path. Directories classify as Directory
// without consulting the extension. Files are matched against the extension
// tables first; unrecognized extensions fall back to content sniffing.
func Classify(path string, isDirectory bool) Category {
	if isDirectory {
		return CategoryDirectory
	}

	switch {
	case matchesExtension(path, imageExtensions):
		return CategoryImage
	case matchesExtension(path, videoExtensions):
		return CategoryVideo
	case matchesExtension(path, audioExtensions):
		return CategoryAudio
	case matchesExtension(path, textExtensions):
		return CategoryText
	case matchesExtension(path, documentExtensions):
		return CategoryDocument
	case matchesExtension(path, archiveExtensions):
		return CategoryArchive
	}

	if sniffsAsText(path) {
		return CategoryText
	}

	return CategoryBinary
}

// sniffsAsText samples up to textProbeLength leading bytes and reports
// whether the non-printable ratio stays below textThreshold. An empty file
// is vacuously text. Any open or read failure classifies as binary; sniffing
// never surfaces an error.
func sniffsAsText(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, textProbeLength)

	sampled := 0
	nonText := 0

	for sampled < textProbeLength {
		read, err := file.Read(buffer[sampled:])
		for _, b := range buffer[sampled : sampled+read] {
			if !isTextByte(b) {
				nonText++
			}
		}

		sampled += read

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return false
		}
	}

	if sampled == 0 {
		return true
	}

	return float64(nonText)/float64(sampled) < textThreshold
}

// isTextByte reports whether b is printable ASCII or ASCII whitespace.
func isTextByte(b byte) bool {
	if b >= 0x20 && b <= 0x7e {
		return true
	}

	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
