// Package runlock enforces single-writer organize runs via a file lock.
package runlock

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrHeld is returned when another process already holds the run lock.
var ErrHeld = errors.New("another mediasort run is already in progress")

// Lock wraps an advisory file lock guarding the archive against concurrent
// writers.
type Lock struct {
	path string
	lock *flock.Flock
}

// New prepares a lock at the given path without acquiring it.
func New(path string) *Lock {
	return &Lock{path: path, lock: flock.New(path)}
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// Acquire takes the lock, failing immediately if it is held elsewhere.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%w (lock file: %s)", ErrHeld, l.path)
	}
	return nil
}

// Release drops the lock. Safe to call when not held.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}
