// Package service orchestrates whole-tree transfers: enumerate the
// source, copy each file block by block, restore its metadata, and
// record the outcome.
package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/nvollmer/lanbridge/internal/domain"
	"github.com/nvollmer/lanbridge/internal/journal"
	"github.com/nvollmer/lanbridge/internal/lock"
	"github.com/nvollmer/lanbridge/internal/logger"
	"github.com/nvollmer/lanbridge/internal/restore"
	"github.com/nvollmer/lanbridge/internal/transfer"
)

// Transfer copies a directory tree from a source root into a destination
// root, restoring each file's captured metadata after its content lands.
// Files are processed one at a time; every failure is file-scoped.
type Transfer struct {
	blockSize int
	log       logger.Logger
	journal   *journal.Journal
}

// Result summarizes one run
type Result struct {
	// Files is the number of files whose content was fully written
	Files int
	// Bytes is the total content bytes written
	Bytes int64
	// MetadataIncomplete lists files whose content landed but whose
	// attribute restoration failed
	MetadataIncomplete []string
	// Failed lists files whose content transfer failed
	Failed []string
}

// NewTransfer creates a transfer service with the given block size
func NewTransfer(blockSize int) (*Transfer, error) {
	if blockSize <= 0 {
		return nil, domain.ErrInvalidBlockSize
	}
	return &Transfer{blockSize: blockSize, log: logger.Nop()}, nil
}

// SetLogger sets the logger for transfer operations
func (t *Transfer) SetLogger(log logger.Logger) {
	if log != nil {
		t.log = log
	}
}

// SetJournal enables outcome persistence
func (t *Transfer) SetJournal(j *journal.Journal) {
	t.journal = j
}

// Run copies every regular file under srcRoot into dstRoot. The
// destination is locked for the duration of the run. Per-file failures
// are logged, journaled and counted but never abort the run; only
// enumeration failure, lock contention or context cancellation do.
func (t *Transfer) Run(ctx context.Context, srcRoot, dstRoot string) (*Result, error) {
	files, err := transfer.Scan(ctx, srcRoot, t.blockSize)
	if err != nil {
		return nil, fmt.Errorf("scan source: %w", err)
	}

	dl, err := lock.New(dstRoot)
	switch {
	case err == nil:
		if err := dl.Acquire(srcRoot); err != nil {
			return nil, err
		}
		defer dl.Release()
	case errors.Is(err, fs.ErrNotExist):
		// Missing destination root is created by the first file's Open
	default:
		return nil, err
	}

	result := &Result{}
	for _, src := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		started := time.Now()
		bytes, err := t.copyOne(src, dstRoot)
		result.Bytes += bytes

		rec := journal.Record{
			Path:       src.Name(),
			Bytes:      bytes,
			StartedAt:  started,
			FinishedAt: time.Now(),
		}

		var rerr *restore.Error
		switch {
		case err == nil:
			result.Files++
			rec.Status = journal.StatusOK
			t.log.Debug("file transferred", "path", src.Name(), "bytes", bytes)
		case errors.As(err, &rerr):
			// Content landed; only attribute restoration is incomplete
			result.Files++
			result.MetadataIncomplete = append(result.MetadataIncomplete, src.Name())
			rec.Status = journal.StatusMetadata
			rec.Error = err.Error()
			t.log.Warn("metadata restoration incomplete", "path", src.Name(), "error", err)
		default:
			result.Failed = append(result.Failed, src.Name())
			rec.Status = journal.StatusFailed
			rec.Error = err.Error()
			t.log.Error("file transfer failed", "path", src.Name(), "error", err)
		}

		if t.journal != nil {
			if jerr := t.journal.Append(rec); jerr != nil {
				t.log.Warn("failed to journal transfer", "path", src.Name(), "error", jerr)
			}
		}
	}

	t.log.Info("transfer complete",
		"files", result.Files,
		"bytes", result.Bytes,
		"failed", len(result.Failed),
		"metadata_incomplete", len(result.MetadataIncomplete),
	)
	return result, nil
}

// copyOne streams one file's content and applies its metadata. The
// returned byte count reflects what reached the destination descriptor
// even when an error follows.
func (t *Transfer) copyOne(src *transfer.File, dstRoot string) (int64, error) {
	dst, err := transfer.NewFromProperties(dstRoot, src.Properties(), t.blockSize)
	if err != nil {
		return 0, err
	}

	if err := src.Open(transfer.Read); err != nil {
		return 0, err
	}
	defer src.Close()

	if err := dst.Open(transfer.Write); err != nil {
		return 0, err
	}

	var written int64
	for {
		block, err := src.Read()
		if err != nil {
			dst.Close()
			return written, err
		}
		if len(block) == 0 {
			break
		}
		if err := dst.Write(block); err != nil {
			dst.Close()
			return written, err
		}
		written += int64(len(block))
	}

	if err := dst.Close(); err != nil {
		return written, err
	}
	return written, dst.ApplyMetadata()
}
