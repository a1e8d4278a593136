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

// KeyFunc is a callable key: it derives a value from a case directly.
type KeyFunc func(c Case) (any, error)

// Key selects a per-case value. It is either a name (a property, a declared
// method or a metadata name) or a callable.
type Key struct {
	name string
	fn   KeyFunc
}

// NamedKey returns a Key resolved by name.
func NamedKey(name string) Key { return Key{name: name} }

// FuncKey returns a callable Key.
func FuncKey(fn KeyFunc) Key { return Key{fn: fn} }

// Name returns the key name; empty for callables.
func (k Key) Name() string { return k.name }

// Func returns the callable, or nil for named keys.
func (k Key) Func() KeyFunc { return k.fn }

// IsFunc reports whether the key is callable.
func (k Key) IsFunc() bool { return k.fn != nil }

// String returns the textual form used in error messages.
func (k Key) String() string {
	if k.fn != nil {
		return "callable"
	}
	return k.name
}
