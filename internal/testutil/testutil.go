// Package testutil provides filesystem helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFile creates a file with the given content under dir, creating
// parent directories as needed, and returns its path.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dirs: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	return path
}

// WriteFileMode creates a file with the given content and mode.
func WriteFileMode(t *testing.T, dir, name string, content []byte, mode os.FileMode) string {
	t.Helper()

	path := WriteFile(t, dir, name, content)
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("failed to chmod test file: %v", err)
	}
	return path
}

// Chtimes sets a file's access and modification times and fails the
// test on error.
func Chtimes(t *testing.T, path string, atime, mtime time.Time) {
	t.Helper()

	if err := os.Chtimes(path, atime, mtime); err != nil {
		t.Fatalf("failed to set times on %s: %v", path, err)
	}
}

// Mtime returns a file's modification time.
func Mtime(t *testing.T, path string) time.Time {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return info.ModTime()
}

// Mode returns a file's permission bits.
func Mode(t *testing.T, path string) os.FileMode {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return info.Mode().Perm()
}

// Repeat returns a byte slice of the given length filled with a cycling
// pattern, handy for block-boundary tests.
func Repeat(length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte('a' + i%26)
	}
	return b
}
