//go:build windows

package transfer

import (
	"io/fs"
	"syscall"
)

// entryTimes extracts the creation and access times from the Win32
// attribute data. Filetime.Nanoseconds already folds in the 1601 epoch
// offset.
func entryTimes(info fs.FileInfo) (created, lastRead int64) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return 0, 0
	}
	return st.CreationTime.Nanoseconds() / 1e6, st.LastAccessTime.Nanoseconds() / 1e6
}
