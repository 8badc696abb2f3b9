package transfer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nvollmer/lanbridge/internal/domain"
)

// Scan walks root and returns a send-side handle for every regular file
// under it, in walk order. Directories are recreated implicitly on the
// receive side and symlinks are not transferred. Entries that vanish
// between listing and stat are skipped.
func Scan(ctx context.Context, root string, blockSize int) ([]*File, error) {
	if blockSize <= 0 {
		return nil, domain.ErrInvalidBlockSize
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, mapError(err)
	}
	if !info.IsDir() {
		return nil, domain.ErrNotDirectory
	}

	var files []*File
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return mapError(err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil // entry vanished mid-walk
		}

		file, err := NewFromEntry(absRoot, path, info, blockSize)
		if err != nil {
			return err
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// mapError converts OS errors to domain errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	if os.IsPermission(err) {
		return domain.ErrPermissionDenied
	}
	return err
}
