package domain

import "time"

// TypeFile is the wire type tag for regular file items.
// Directories and other entry kinds are not transferred as items.
const TypeFile = "file"

// Metadata is the snapshot of a file's identity and attributes taken at
// enumeration time. It travels alongside the content and is re-applied to
// the destination file once the content has been written.
//
// A Metadata value is constructed once and never mutated afterwards. Size
// is informational: it reflects the file at snapshot time and is not
// reconciled against the bytes actually transferred.
type Metadata struct {
	// Name is the path relative to the transfer root, always with
	// forward slashes and never absolute.
	Name string `mapstructure:"name"`

	// Size in bytes at snapshot time.
	Size int64 `mapstructure:"size"`

	// ReadOnly means the current process could not write the file.
	// On restoration all write permission bits are cleared.
	ReadOnly bool `mapstructure:"read_only"`

	// Executable means the current process could execute the file.
	// On restoration execute bits are added; a false value never
	// removes execute bits already present on the destination.
	Executable bool `mapstructure:"executable"`

	// Created, LastRead and LastModified are epoch milliseconds.
	// Zero means the value was not captured and the corresponding
	// on-disk timestamp must be left untouched.
	Created      int64 `mapstructure:"created"`
	LastRead     int64 `mapstructure:"last_read"`
	LastModified int64 `mapstructure:"last_modified"`
}

// CreatedTime returns the creation timestamp, or the zero time for the
// unknown sentinel.
func (m Metadata) CreatedTime() time.Time {
	return millisToTime(m.Created)
}

// LastReadTime returns the access timestamp, or the zero time for the
// unknown sentinel.
func (m Metadata) LastReadTime() time.Time {
	return millisToTime(m.LastRead)
}

// LastModifiedTime returns the modification timestamp, or the zero time
// for the unknown sentinel.
func (m Metadata) LastModifiedTime() time.Time {
	return millisToTime(m.LastModified)
}

// millisToTime converts epoch milliseconds to a time.Time, truncated to
// whole seconds. These accessors feed the utimes-based restoration path,
// which carries second resolution; the Windows path works from the raw
// millisecond fields instead.
func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.Unix(ms/1000, 0)
}
