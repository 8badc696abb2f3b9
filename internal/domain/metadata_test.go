package domain

import (
	"testing"
	"time"
)

func TestTimeAccessors(t *testing.T) {
	md := Metadata{
		Created:      1600000000123,
		LastRead:     1650000000999,
		LastModified: 1700000000500,
	}

	// Millisecond values truncate to whole seconds
	if got := md.CreatedTime(); !got.Equal(time.Unix(1600000000, 0)) {
		t.Errorf("CreatedTime = %v", got)
	}
	if got := md.LastReadTime(); !got.Equal(time.Unix(1650000000, 0)) {
		t.Errorf("LastReadTime = %v", got)
	}
	if got := md.LastModifiedTime(); !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("LastModifiedTime = %v", got)
	}
}

func TestTimeAccessorsSentinel(t *testing.T) {
	var md Metadata

	if !md.CreatedTime().IsZero() || !md.LastReadTime().IsZero() || !md.LastModifiedTime().IsZero() {
		t.Error("expected zero times for sentinel values")
	}
}
