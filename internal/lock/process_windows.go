//go:build windows

package lock

import (
	"errors"

	"golang.org/x/sys/windows"
)

// processAlive reports whether a process with the given PID is running.
func processAlive(pid int) bool {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		// ACCESS_DENIED: the process exists but belongs to someone else
		return errors.Is(err, windows.ERROR_ACCESS_DENIED)
	}
	windows.CloseHandle(handle)
	return true
}
