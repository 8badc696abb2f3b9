//go:build linux

package transfer

import (
	"io/fs"
	"syscall"
)

// entryTimes extracts the access time from the raw stat. Linux does not
// expose a creation time through stat(2), so created stays at the
// unknown sentinel. Ctim is metadata-change time, not creation time.
func entryTimes(info fs.FileInfo) (created, lastRead int64) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0
	}
	return 0, int64(st.Atim.Sec)*1000 + int64(st.Atim.Nsec)/1e6
}
