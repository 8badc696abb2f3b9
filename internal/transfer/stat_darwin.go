//go:build darwin

package transfer

import (
	"io/fs"
	"syscall"
)

// entryTimes extracts the birth and access times from the raw stat.
func entryTimes(info fs.FileInfo) (created, lastRead int64) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0
	}
	created = int64(st.Birthtimespec.Sec)*1000 + int64(st.Birthtimespec.Nsec)/1e6
	lastRead = int64(st.Atimespec.Sec)*1000 + int64(st.Atimespec.Nsec)/1e6
	return created, lastRead
}
