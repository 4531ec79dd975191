package probe

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

func TestClassifyDirectory(t *testing.T) {
	// Extension is never consulted for directories.
	if got := Classify("photos.png", true); got != CategoryDirectory {
		t.Errorf("Classify(dir) = %s, want %s", got, CategoryDirectory)
	}
}

func TestClassifyByExtension(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		want Category
	}{
		{"photo.png", CategoryImage},
		{"photo.JPEG", CategoryImage},
		{"clip.mkv", CategoryVideo},
		{"song.flac", CategoryAudio},
		{"notes.md", CategoryText},
		{"report.PDF", CategoryDocument},
		{"backup.tar", CategoryArchive},
	}

	for _, tc := range cases {
		// Content is deliberately binary garbage: a recognized extension
		// wins without any sniffing.
		path := writeFile(t, dir, tc.name, bytes.Repeat([]byte{0x00, 0xff}, 64))

		if got := Classify(path, false); got != tc.want {
			t.Errorf("Classify(%s) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassifySniffsPrintableAsText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "no-extension", []byte("plain ascii\nwith newlines\nand tabs\t\n"))

	if got := Classify(path, false); got != CategoryText {
		t.Errorf("Classify(printable) = %s, want %s", got, CategoryText)
	}
}

func TestClassifySniffsBinary(t *testing.T) {
	dir := t.TempDir()

	// Half the sample is non-printable, well over the 0.3 threshold.
	content := make([]byte, 512)
	for i := range content {
		if i%2 == 0 {
			content[i] = 0x01
		} else {
			content[i] = 'a'
		}
	}

	path := writeFile(t, dir, "blob", content)

	if got := Classify(path, false); got != CategoryBinary {
		t.Errorf("Classify(binary) = %s, want %s", got, CategoryBinary)
	}
}

func TestClassifyEmptyFileIsText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty", nil)

	if got := Classify(path, false); got != CategoryText {
		t.Errorf("Classify(empty) = %s, want %s", got, CategoryText)
	}
}

func TestClassifyUnreadableFileIsBinary(t *testing.T) {
	// Sniffing an unopenable path fails safe toward Binary.
	if got := Classify(filepath.Join(t.TempDir(), "missing"), false); got != CategoryBinary {
		t.Errorf("Classify(unreadable) = %s, want %s", got, CategoryBinary)
	}
}

func TestClassifySniffsOnlyLeadingBytes(t *testing.T) {
	dir := t.TempDir()

	// Printable prefix longer than the probe window followed by garbage;
	// only the first 512 bytes matter.
	content := append(bytes.Repeat([]byte{'x'}, 600), bytes.Repeat([]byte{0x00}, 600)...)
	path := writeFile(t, dir, "trailing-garbage", content)

	if got := Classify(path, false); got != CategoryText {
		t.Errorf("Classify(printable prefix) = %s, want %s", got, CategoryText)
	}
}
