//go:build !windows

package restore

import "github.com/nvollmer/lanbridge/internal/domain"

// setTimes applies the access and modification timestamps in a single
// Chtimes call. A zero time value leaves the corresponding on-disk slot
// untouched, which maps the record's zero sentinel directly onto the
// OS's omit semantics. Values are truncated to whole seconds; POSIX has
// no settable creation time, so Created is ignored here.
func (r *Restorer) setTimes(path string, md domain.Metadata) error {
	atime := md.LastReadTime()
	mtime := md.LastModifiedTime()
	if atime.IsZero() && mtime.IsZero() {
		return nil
	}
	if err := r.fs.Chtimes(path, atime, mtime); err != nil {
		return &Error{Op: OpSetTimes, Path: path, Err: err}
	}
	return nil
}
