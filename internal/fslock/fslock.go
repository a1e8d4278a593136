/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package fslock serializes read-modify-write cycles on files through an
// advisory lock held on a sibling "<file>.lock".
package fslock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	// DefaultTimeout bounds how long Update waits for the lock.
	DefaultTimeout = 3 * time.Second
	// DefaultRetryInterval is the delay between lock attempts.
	DefaultRetryInterval = 100 * time.Millisecond
)

// ErrLocked is returned when the lock could not be acquired in time.
var ErrLocked = errors.New("enumx(fslock): could not acquire file lock")

// FileLock is an exclusive advisory lock.
type FileLock interface {
	// TryLockContext attempts to acquire the lock, retrying until ctx is done.
	TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)
	// Unlock releases the lock.
	Unlock() error
}

// Factory creates FileLock instances.
type Factory interface {
	// New creates a FileLock for the given lock file path.
	New(path string) FileLock
}

// FlockFactory creates locks backed by github.com/gofrs/flock.
type FlockFactory struct{}

// New implements Factory.
func (FlockFactory) New(path string) FileLock { return flock.New(path) }

// Updater guards file updates with locks from a Factory.
type Updater struct {
	factory Factory
	timeout time.Duration
	retry   time.Duration
}

// Option configures an Updater.
type Option func(*Updater)

// WithFactory replaces the lock factory.
func WithFactory(f Factory) Option {
	return func(u *Updater) {
		if f != nil {
			u.factory = f
		}
	}
}

// WithTimeout sets how long to wait for the lock.
func WithTimeout(d time.Duration) Option {
	return func(u *Updater) {
		if d > 0 {
			u.timeout = d
		}
	}
}

// WithRetryInterval sets the delay between lock attempts.
func WithRetryInterval(d time.Duration) Option {
	return func(u *Updater) {
		if d > 0 {
			u.retry = d
		}
	}
}

// New returns an Updater using flock by default.
func New(opts ...Option) *Updater {
	u := &Updater{factory: FlockFactory{}, timeout: DefaultTimeout, retry: DefaultRetryInterval}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// EditFunc receives the current content (nil and exists == false when the
// file is missing) and returns the new content, or write == false to leave
// the file alone.
type EditFunc func(current []byte, exists bool) (next []byte, write bool, err error)

// Update runs edit on path while holding path+".lock" and writes the result.
// Parent directories are created as needed. It reports whether the file was
// written.
func (u *Updater) Update(ctx context.Context, path string, edit EditFunc) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	lock := u.factory.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, u.retry)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return false, fmt.Errorf("enumx(fslock): lock %s: %w", path, err)
	}
	if !locked {
		return false, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	current, err := os.ReadFile(path)
	exists := err == nil
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	next, write, err := edit(current, exists)
	if err != nil || !write {
		return false, err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, next, mode); err != nil {
		return false, err
	}
	return true, nil
}
