//go:build windows

package transfer

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// writable reports whether path lacks the read-only attribute. Windows
// has no per-process access probe comparable to POSIX access(2).
func writable(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY == 0
}

// executable is an extension check on Windows; there is no execute bit.
func executable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd", ".com":
		return true
	}
	return false
}
