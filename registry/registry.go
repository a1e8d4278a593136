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

package registry

import (
	"errors"
	"sort"
	"sync"

	"dirpx.dev/enumx/apis"
)

var (
	// ErrNilEnum is returned when a nil enum is provided.
	ErrNilEnum = errors.New("enumx(registry): nil enum provided")
	// ErrEmptyName is returned when the enum has an empty name.
	ErrEmptyName = errors.New("enumx(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to register a different
	// enum under a name that is already taken.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting enum registration")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps enum names to enums.
	m sync.Map // map[string]apis.Enum
	// count tracks the number of registered entries.
	count int
}

// Register associates e with its name.
// It is idempotent for the same enum.
func (r *registry) Register(e apis.Enum) error {
	// Validate inputs early.
	if e == nil {
		return ErrNilEnum
	}
	name := e.Name()
	if name == "" {
		return ErrEmptyName
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(apis.Enum) == e {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if old.(apis.Enum) == e {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, e)
	r.count++
	return nil
}

// Lookup returns the enum registered under name.
func (r *registry) Lookup(name string) (apis.Enum, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(apis.Enum), true
	}
	return nil, false
}

// Entries returns a snapshot sorted by name.
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name: key.(string),
			Enum: value.(apis.Enum),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}
