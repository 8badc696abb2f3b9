//go:build !windows

package lock

import (
	"errors"
	"os"
	"syscall"
)

// processAlive reports whether a process with the given PID is running.
// FindProcess always succeeds on Unix, so signal 0 does the actual probe.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM: the process exists but belongs to someone else
	return errors.Is(err, syscall.EPERM)
}
