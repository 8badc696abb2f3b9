// Package restore applies a captured metadata snapshot back onto an
// on-disk file: permission bits first, then all timestamps in a single
// platform call, honoring the zero sentinel for values that were never
// captured.
package restore

import (
	"io/fs"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/nvollmer/lanbridge/internal/domain"
)

// Restorer reconciles a file's on-disk attributes with a Metadata record.
// The zero value is not usable; construct with New or NewWithFs.
type Restorer struct {
	fs afero.Fs
}

// New returns a Restorer backed by the real filesystem.
func New() *Restorer {
	return &Restorer{fs: afero.NewOsFs()}
}

// NewWithFs returns a Restorer over fsys. Intended for tests; note that
// timestamp restoration on Windows always goes through the real OS
// because creation time cannot be expressed through the Fs interface.
func NewWithFs(fsys afero.Fs) *Restorer {
	return &Restorer{fs: fsys}
}

// Restore applies md's permission flags and timestamps to path.
//
// Sub-steps run independently: a failed permission update does not stop
// the timestamp update. Each failure is reported as a *Error and the
// returned error aggregates one entry per failed step. A failed initial
// stat aborts immediately since both steps depend on it.
//
// Restore is idempotent: applying the same record twice leaves the file
// in the same state as applying it once.
func (r *Restorer) Restore(path string, md domain.Metadata) error {
	info, err := r.fs.Stat(path)
	if err != nil {
		return &Error{Op: OpStat, Path: path, Err: err}
	}

	var result *multierror.Error

	perm := info.Mode().Perm()
	if next := targetPerm(perm, md); next != perm {
		if err := r.fs.Chmod(path, next); err != nil {
			result = multierror.Append(result, &Error{Op: OpChmod, Path: path, Err: err})
		}
	}

	if err := r.setTimes(path, md); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// targetPerm computes the permission bits the record asks for, starting
// from the file's current bits. ReadOnly clears every write bit and
// Executable adds every execute bit; the two adjustments are independent.
// Executable=false never removes execute bits already present.
func targetPerm(perm fs.FileMode, md domain.Metadata) fs.FileMode {
	if md.ReadOnly {
		perm &^= 0o222
	}
	if md.Executable {
		perm |= 0o111
	}
	return perm
}
