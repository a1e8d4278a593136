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

// Package ordered provides an insertion-ordered map.
//
// Map mirrors associative-array semantics: setting an existing key replaces
// its value but keeps its original position, so "last write wins" without
// reordering. It is the container returned by keyed collection operations
// (group-by, key-by, pluck, map).
package ordered

// Map is an insertion-ordered map. The zero value is ready to use.
// A Map is not safe for concurrent mutation; collection operations build a
// fresh Map and never mutate it after returning it.
type Map[K comparable, V any] struct {
	keys  []K
	index map[K]int
	vals  []V
}

// New returns an empty Map with room for n entries.
func New[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		keys:  make([]K, 0, n),
		index: make(map[K]int, n),
		vals:  make([]V, 0, n),
	}
}

// Set stores v under k. An existing key keeps its position.
func (m *Map[K, V]) Set(k K, v V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[k]; ok {
		m.vals[i] = v
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.index[k]
	if !ok {
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.Get(k)
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key order.
func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// Each calls fn for every entry in order until fn returns false.
func (m *Map[K, V]) Each(fn func(k K, v V) bool) {
	if m == nil {
		return
	}
	for i, k := range m.keys {
		if !fn(k, m.vals[i]) {
			return
		}
	}
}

// Clone returns a shallow copy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V](m.Len())
	m.Each(func(k K, v V) bool {
		out.Set(k, v)
		return true
	})
	return out
}
