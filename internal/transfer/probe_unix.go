//go:build !windows

package transfer

import "golang.org/x/sys/unix"

// writable reports whether the current process can write path. Access
// evaluates the effective identity, which may differ from what the raw
// mode bits suggest (e.g. root, or group membership).
func writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// executable reports whether the current process can execute path.
func executable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
