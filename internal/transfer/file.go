// Package transfer implements the per-file unit of a transfer: a
// metadata record snapshotted at enumeration time, bound to a single-use
// open/read-or-write/close handle that can restore the record's
// attributes onto the destination file once its content is on disk.
package transfer

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nvollmer/lanbridge/internal/domain"
	"github.com/nvollmer/lanbridge/internal/restore"
)

// Mode selects the I/O direction of a handle.
type Mode int

const (
	// Read opens the source file for block reads
	Read Mode = iota + 1
	// Write opens the destination file for writes, creating parent
	// directories as needed
	Write
)

// File binds one metadata record to one absolute path. A handle is
// single-use: Closed -> Open(Read) -> Closed or Closed -> Open(Write) ->
// Closed, with no other transitions. It owns its descriptor exclusively
// and must not be shared between goroutines.
type File struct {
	md        domain.Metadata
	path      string
	blockSize int

	mode Mode
	f    *os.File
	buf  []byte
}

// NewFromProperties builds a receive-side handle from a transmitted
// property bag. Missing keys default to zero values. The target path is
// root joined with the transmitted name; the file itself is not touched
// until Open.
func NewFromProperties(root string, props Properties, blockSize int) (*File, error) {
	if blockSize <= 0 {
		return nil, domain.ErrInvalidBlockSize
	}

	md, err := props.decode()
	if err != nil {
		return nil, err
	}
	if md.Name == "" {
		return nil, domain.ErrEmptyName
	}

	name := filepath.FromSlash(md.Name)
	if filepath.IsAbs(name) {
		return nil, domain.ErrAbsoluteName
	}

	// Join cleans the path; verify the result stays under root so a
	// transmitted name cannot escape with ".." segments
	path := filepath.Join(root, name)
	if rel, err := filepath.Rel(root, path); err != nil || escapesRoot(rel) {
		return nil, domain.ErrAbsoluteName
	}

	return &File{md: md, path: path, blockSize: blockSize}, nil
}

// escapesRoot reports whether a cleaned relative path points outside the
// root. Names that merely start with two dots, like "..notes.txt", are
// legitimate and stay inside.
func escapesRoot(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// NewFromEntry builds a send-side handle for an existing regular file
// under root. The record snapshots the file's size, flags and timestamps
// at call time; writes to the file afterwards are not reflected.
// ReadOnly and Executable describe what the current process can do with
// the file, not its raw permission bits.
func NewFromEntry(root, path string, info fs.FileInfo, blockSize int) (*File, error) {
	if blockSize <= 0 {
		return nil, domain.ErrInvalidBlockSize
	}
	if !info.Mode().IsRegular() {
		return nil, domain.ErrNotFile
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil || escapesRoot(rel) {
		return nil, domain.ErrAbsoluteName
	}

	created, lastRead := entryTimes(info)
	md := domain.Metadata{
		Name:         filepath.ToSlash(rel),
		Size:         info.Size(),
		ReadOnly:     !writable(abs),
		Executable:   executable(abs),
		Created:      created,
		LastRead:     lastRead,
		LastModified: info.ModTime().UnixMilli(),
	}

	return &File{md: md, path: abs, blockSize: blockSize}, nil
}

// Type returns the wire type tag for file items.
func (f *File) Type() string { return domain.TypeFile }

// Name returns the slash-normalized path relative to the transfer root.
func (f *File) Name() string { return f.md.Name }

// Size returns the byte count captured at snapshot time.
func (f *File) Size() int64 { return f.md.Size }

// ReadOnly reports whether the source file was not writable.
func (f *File) ReadOnly() bool { return f.md.ReadOnly }

// Executable reports whether the source file was executable.
func (f *File) Executable() bool { return f.md.Executable }

// Created returns the creation timestamp in epoch milliseconds, 0 if unknown.
func (f *File) Created() int64 { return f.md.Created }

// LastRead returns the access timestamp in epoch milliseconds, 0 if unknown.
func (f *File) LastRead() int64 { return f.md.LastRead }

// LastModified returns the modification timestamp in epoch milliseconds, 0 if unknown.
func (f *File) LastModified() int64 { return f.md.LastModified }

// Metadata returns a copy of the underlying record.
func (f *File) Metadata() domain.Metadata { return f.md }

// Path returns the absolute target path.
func (f *File) Path() string { return f.path }

// Open acquires the descriptor in the given mode. Write mode first
// ensures every ancestor directory of the target exists; if that fails
// the file is never opened. A handle can be opened once.
func (f *File) Open(mode Mode) error {
	if f.mode != 0 {
		return domain.ErrAlreadyOpen
	}

	switch mode {
	case Read:
		h, err := os.Open(f.path)
		if err != nil {
			return fmt.Errorf("open %s: %w", f.path, err)
		}
		f.f, f.mode = h, mode
	case Write:
		if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
			return fmt.Errorf("create directories for %s: %w", f.path, err)
		}
		h, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("open %s: %w", f.path, err)
		}
		f.f, f.mode = h, mode
	default:
		return fmt.Errorf("%w: mode %d", domain.ErrWrongMode, mode)
	}

	return nil
}

// Read returns the next block of at most the configured block size,
// trimmed to the bytes actually read. An empty result with a nil error
// means clean end of stream; a non-nil error is a hard read failure and
// never end of stream. The returned slice is the caller's to keep.
func (f *File) Read() ([]byte, error) {
	if f.f == nil {
		return nil, domain.ErrNotOpen
	}
	if f.mode != Read {
		return nil, domain.ErrWrongMode
	}

	if f.buf == nil {
		f.buf = make([]byte, f.blockSize)
	}
	n, err := io.ReadFull(f.f, f.buf)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	block := make([]byte, n)
	copy(block, f.buf[:n])
	return block, nil
}

// Write writes the whole buffer. A short write is reported as an error;
// there is no retry.
func (f *File) Write(data []byte) error {
	if f.f == nil {
		return domain.ErrNotOpen
	}
	if f.mode != Write {
		return domain.ErrWrongMode
	}

	n, err := f.f.Write(data)
	if err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if n < len(data) {
		return fmt.Errorf("write %s: %w", f.path, io.ErrShortWrite)
	}
	return nil
}

// Close releases the descriptor. It never touches metadata; callers
// that wrote content follow up with ApplyMetadata. Closing an already
// closed handle is a no-op.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	h := f.f
	f.f = nil
	if err := h.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}

// ApplyMetadata restores the record's permission flags and timestamps
// onto the target file. The descriptor must be released first. Failures
// are file-scoped and typed per restoration step; see the restore
// package. Applying twice yields the same on-disk state as applying once.
func (f *File) ApplyMetadata() error {
	if f.f != nil {
		return domain.ErrHandleOpen
	}
	return restore.New().Restore(f.path, f.md)
}
