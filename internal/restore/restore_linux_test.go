//go:build linux

package restore

import (
	"os"
	"syscall"
	"testing"

	"github.com/nvollmer/lanbridge/internal/domain"
	"github.com/nvollmer/lanbridge/internal/testutil"
)

func atime(t *testing.T, path string) int64 {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	return int64(info.Sys().(*syscall.Stat_t).Atim.Sec)
}

func TestRestoreAccessTime(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "f.txt", []byte("x"))

	md := domain.Metadata{Name: "f.txt", LastRead: 1650000000000}
	if err := New().Restore(path, md); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if sec := atime(t, path); sec != 1650000000 {
		t.Errorf("expected atime 1650000000, got %d", sec)
	}
}
