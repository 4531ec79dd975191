//go:build linux

package sysmeta

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func tempFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meta.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	return path
}

func TestOwnership(t *testing.T) {
	owner, group, err := Ownership(tempFile(t))
	if err != nil {
		t.Fatalf("Ownership: %v", err)
	}

	if owner == "" || group == "" {
		t.Errorf("owner = %q, group = %q, want both non-empty", owner, group)
	}
}

func TestOwnershipMissingPath(t *testing.T) {
	if _, _, err := Ownership(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Ownership on a missing path succeeded, want error")
	}
}

func TestTimestamps(t *testing.T) {
	access, modify, change, err := Timestamps(tempFile(t))
	if err != nil {
		t.Fatalf("Timestamps: %v", err)
	}

	for _, value := range []string{access, modify, change} {
		if !timestampPattern.MatchString(value) {
			t.Errorf("timestamp %q does not match expected layout", value)
		}
	}
}
