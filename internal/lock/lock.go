// Package lock prevents two transfers from writing into the same
// destination root at the same time, using an atomically created lock
// file inside the destination.
package lock

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nvollmer/lanbridge/internal/domain"
)

const (
	// FileName is the name of the lock file inside the destination root
	FileName = ".lanbridge.lock"
	// DefaultStaleTimeout is the fallback staleness cutoff when the
	// holder cannot be probed (different host)
	DefaultStaleTimeout = 30 * time.Minute
)

// Info describes the lock holder
type Info struct {
	PID       int       `json:"pid"`
	Hostname  string    `json:"hostname"`
	StartTime time.Time `json:"start_time"`
	Source    string    `json:"source,omitempty"`
}

// DestLock is a file-based lock over one destination root
type DestLock struct {
	path         string
	staleTimeout time.Duration
	held         bool
}

// New creates a lock for the given destination root. The root must
// exist; the lock file is created on Acquire.
func New(destRoot string) (*DestLock, error) {
	info, err := os.Stat(destRoot)
	if err != nil {
		return nil, fmt.Errorf("lock destination: %w", err)
	}
	if !info.IsDir() {
		return nil, domain.ErrNotDirectory
	}

	return &DestLock{
		path:         filepath.Join(destRoot, FileName),
		staleTimeout: DefaultStaleTimeout,
	}, nil
}

// SetStaleTimeout overrides the staleness cutoff
func (l *DestLock) SetStaleTimeout(d time.Duration) {
	l.staleTimeout = d
}

// Acquire takes the lock, removing a stale one left behind by a dead
// process first. Returns domain.ErrLocked if another live transfer
// holds it.
func (l *DestLock) Acquire(source string) error {
	if existing, err := l.read(); err == nil {
		if !l.isStale(existing) {
			return fmt.Errorf("%w: pid %d on %s since %s",
				domain.ErrLocked, existing.PID, existing.Hostname,
				existing.StartTime.Format(time.RFC3339))
		}
		if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale lock: %w", err)
		}
	}

	hostname, _ := os.Hostname()
	info := Info{
		PID:       os.Getpid(),
		Hostname:  hostname,
		StartTime: time.Now(),
		Source:    source,
	}

	// O_EXCL makes creation atomic against a racing transfer
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return domain.ErrLocked
		}
		return fmt.Errorf("create lock file: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(info); err != nil {
		os.Remove(l.path)
		return fmt.Errorf("write lock info: %w", err)
	}

	l.held = true
	return nil
}

// Release removes the lock file. Releasing an unheld lock is a no-op.
func (l *DestLock) Release() error {
	if !l.held {
		return nil
	}
	l.held = false
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}

// Holder returns the current holder, or nil if the lock is free or stale
func (l *DestLock) Holder() (*Info, error) {
	info, err := l.read()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if l.isStale(info) {
		return nil, nil
	}
	return info, nil
}

func (l *DestLock) read() (*Info, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("invalid lock file: %w", err)
	}
	return &info, nil
}

// isStale reports whether the holder is gone. On the same host the
// process is probed directly; across hosts only the timeout applies.
func (l *DestLock) isStale(info *Info) bool {
	hostname, _ := os.Hostname()
	if info.Hostname == hostname {
		return !processAlive(info.PID)
	}
	return time.Since(info.StartTime) > l.staleTimeout
}
