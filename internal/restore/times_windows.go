//go:build windows

package restore

import (
	"time"

	"golang.org/x/sys/windows"

	"github.com/nvollmer/lanbridge/internal/domain"
)

// setTimes applies all three timestamps in a single SetFileTime call on
// a FILE_WRITE_ATTRIBUTES handle. A nil FILETIME pointer leaves the
// corresponding slot untouched, which maps the record's zero sentinel
// directly onto the API's omit semantics. Unlike POSIX, Windows accepts
// a creation time, and millisecond precision survives the conversion to
// 100ns ticks.
func (r *Restorer) setTimes(path string, md domain.Metadata) error {
	if md.Created == 0 && md.LastRead == 0 && md.LastModified == 0 {
		return nil
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &Error{Op: OpOpenHandle, Path: path, Err: err}
	}

	h, err := windows.CreateFile(
		p,
		windows.GENERIC_READ|windows.FILE_WRITE_ATTRIBUTES,
		0,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return &Error{Op: OpOpenHandle, Path: path, Err: err}
	}
	defer windows.CloseHandle(h)

	if err := windows.SetFileTime(h,
		msToFiletime(md.Created),
		msToFiletime(md.LastRead),
		msToFiletime(md.LastModified),
	); err != nil {
		return &Error{Op: OpSetTimes, Path: path, Err: err}
	}
	return nil
}

// msToFiletime converts epoch milliseconds to a FILETIME pointer, or nil
// for the zero sentinel. NsecToFiletime handles the 100ns tick scale and
// the 1601 epoch offset.
func msToFiletime(ms int64) *windows.Filetime {
	if ms == 0 {
		return nil
	}
	ft := windows.NsecToFiletime(ms * int64(time.Millisecond))
	return &ft
}
