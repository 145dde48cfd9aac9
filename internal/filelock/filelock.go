// Package filelock guards an output directory against concurrent combine
// runs with an advisory file lock.
package filelock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// RunLock wraps a flock file lock coordinating exclusive access to an
// output directory across processes.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// NewRunLock creates a run lock backed by a lock file at the given path.
// The file is created on first acquisition and left in place afterwards;
// the advisory lock, not the file's existence, is what gates access.
func NewRunLock(path string) *RunLock {
	return &RunLock{
		flock: flock.New(path),
		path:  path,
	}
}

// TryLock attempts to acquire the exclusive lock without blocking.
// Returns true if the lock was acquired, false if another process holds it.
func (rl *RunLock) TryLock() (bool, error) {
	acquired, err := rl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock on %s: %w", rl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (rl *RunLock) Unlock() error {
	if err := rl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", rl.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (rl *RunLock) Path() string {
	return rl.path
}
