package domain

import "errors"

// Filesystem errors
var (
	// ErrNotFound indicates the requested path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFile indicates expected a regular file but got a directory
	ErrNotFile = errors.New("not a regular file")

	// ErrNotDirectory indicates expected a directory but got a file
	ErrNotDirectory = errors.New("not a directory")
)

// File handle errors
var (
	// ErrNotOpen indicates a read, write or close on a handle that is not open
	ErrNotOpen = errors.New("file not open")

	// ErrAlreadyOpen indicates Open was called twice on the same handle
	ErrAlreadyOpen = errors.New("file already open")

	// ErrWrongMode indicates a read on a write handle or vice versa
	ErrWrongMode = errors.New("operation not valid for open mode")

	// ErrHandleOpen indicates metadata restoration was attempted while
	// the descriptor is still held
	ErrHandleOpen = errors.New("file still open")
)

// Metadata errors
var (
	// ErrEmptyName indicates a record with no relative name
	ErrEmptyName = errors.New("empty file name")

	// ErrAbsoluteName indicates a record whose name escapes the root
	ErrAbsoluteName = errors.New("file name must be relative")

	// ErrInvalidBlockSize indicates a non-positive block size
	ErrInvalidBlockSize = errors.New("block size must be positive")
)

// Config errors
var (
	// ErrConfigNotFound indicates config file not found
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

// Lock errors
var (
	// ErrLocked indicates another transfer already holds the destination lock
	ErrLocked = errors.New("destination locked by another transfer")
)
