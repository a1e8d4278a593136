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

package apis

// Registry is the process-wide table of declared enum types, keyed by their
// fully-qualified name. Keep it minimal so implementations can be
// sync.Map-backed.
type Registry interface {
	// Register adds e under e.Name(). It is idempotent for the same enum;
	// registering a different enum under a taken name fails.
	Register(e Enum) error
	// Lookup returns the enum registered under name.
	Lookup(name string) (Enum, bool)
	// Entries returns a snapshot sorted by name, for diagnostics and tooling.
	Entries() []Entry
	// Count returns the number of registered enums.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (name, enum) association in a Registry snapshot.
type Entry struct {
	// Name is the registered name.
	Name string
	// Enum is the registered enum type.
	Enum Enum
}
