package restore

import "fmt"

// Op identifies the restoration sub-step that failed.
type Op string

const (
	// OpStat is the initial attribute query on the target file
	OpStat Op = "stat"
	// OpChmod is the permission-bit update
	OpChmod Op = "chmod"
	// OpOpenHandle is the attribute-handle open (Windows only)
	OpOpenHandle Op = "open-handle"
	// OpSetTimes is the timestamp update
	OpSetTimes Op = "set-times"
)

// Error reports a single failed restoration sub-step. It wraps the
// underlying OS error so callers can still match with errors.Is, and
// carries the Op so metadata failures are distinguishable from plain
// I/O failures.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("restore %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
