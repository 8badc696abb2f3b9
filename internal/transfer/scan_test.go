package transfer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/nvollmer/lanbridge/internal/domain"
	"github.com/nvollmer/lanbridge/internal/testutil"
)

func TestScan(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "top.txt", []byte("1"))
	testutil.WriteFile(t, root, "sub/nested.txt", []byte("22"))
	testutil.WriteFile(t, root, "sub/deeper/leaf.txt", []byte("333"))
	if err := os.Mkdir(filepath.Join(root, "empty"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := Scan(context.Background(), root, 1024)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name())
	}
	sort.Strings(names)

	want := []string{"sub/deeper/leaf.txt", "sub/nested.txt", "top.txt"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %q, got %q", want[i], names[i])
		}
	}
}

func TestScanSkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	root := t.TempDir()
	target := testutil.WriteFile(t, root, "real.txt", []byte("data"))
	if err := os.Symlink(target, filepath.Join(root, "link.txt")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	files, err := Scan(context.Background(), root, 1024)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0].Name() != "real.txt" {
		t.Errorf("expected only real.txt, got %d files", len(files))
	}
}

func TestScanErrors(t *testing.T) {
	root := t.TempDir()

	if _, err := Scan(context.Background(), filepath.Join(root, "missing"), 1024); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing root: expected ErrNotFound, got %v", err)
	}

	path := testutil.WriteFile(t, root, "f.txt", []byte("x"))
	if _, err := Scan(context.Background(), path, 1024); !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("file root: expected ErrNotDirectory, got %v", err)
	}

	if _, err := Scan(context.Background(), root, 0); !errors.Is(err, domain.ErrInvalidBlockSize) {
		t.Errorf("zero block size: expected ErrInvalidBlockSize, got %v", err)
	}
}

func TestScanCancellation(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "f.txt", []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, root, 1024); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
