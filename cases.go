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

package enumx

import (
	"fmt"
	"slices"

	"github.com/goccy/go-json"

	"dirpx.dev/enumx/ordered"
	"dirpx.dev/enumx/utils/values"
)

// Cases is an ordered collection of (key, case) pairs. Keys are declaration
// positions unless an operation re-keys the collection. Every operation
// returns a new collection and leaves the receiver untouched.
type Cases struct {
	m *ordered.Map[any, *Case]
}

// collect keys cases by position.
func collect(cases []*Case) Cases {
	m := ordered.New[any, *Case](len(cases))
	for i, c := range cases {
		m.Set(i, c)
	}
	return Cases{m: m}
}

// Collect builds a collection from cases, keyed by position.
func Collect(cases ...*Case) Cases { return collect(cases) }

// backed reports whether the collection holds backed cases, judged by its
// first case. Empty collections are treated as pure.
func (cs Cases) backed() bool {
	c, ok := cs.First(nil)
	return ok && c.backed
}

// cfgNormalize reports whether integer keys are normalized.
func cfgNormalize() bool { return Config().NormalizeIntegers }

// Count returns the number of cases.
func (cs Cases) Count() int { return cs.m.Len() }

// IsEmpty reports whether the collection holds no cases.
func (cs Cases) IsEmpty() bool { return cs.m.Len() == 0 }

// All returns the cases in order.
func (cs Cases) All() []*Case { return cs.m.Values() }

// Keys returns the keys in order.
func (cs Cases) Keys() []any { return cs.m.Keys() }

// Get returns the case stored under key.
func (cs Cases) Get(key any) (*Case, bool) { return cs.m.Get(key) }

// Each calls fn for every (case, key) pair until fn returns false.
func (cs Cases) Each(fn func(c *Case, key any) bool) {
	cs.m.Each(func(k any, c *Case) bool { return fn(c, k) })
}

// Has reports whether target designates one of the cases.
func (cs Cases) Has(target any) bool {
	_, ok := cs.First(func(c *Case, _ any) bool { return c.Is(target) })
	return ok
}

// Names returns the case names in order.
func (cs Cases) Names() []string {
	out := make([]string, 0, cs.Count())
	cs.Each(func(c *Case, _ any) bool {
		out = append(out, c.name)
		return true
	})
	return out
}

// Values returns the backing values in order, empty when pure.
func (cs Cases) Values() []any {
	out := make([]any, 0, cs.Count())
	if !cs.backed() {
		return out
	}
	cs.Each(func(c *Case, _ any) bool {
		out = append(out, c.value)
		return true
	})
	return out
}

// First returns the first case satisfying pred, or the first case if pred is nil.
func (cs Cases) First(pred func(c *Case, key any) bool) (*Case, bool) {
	var found *Case
	cs.Each(func(c *Case, k any) bool {
		if pred == nil || pred(c, k) {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// FirstOr is like First but returns def when nothing matches.
func (cs Cases) FirstOr(pred func(c *Case, key any) bool, def *Case) *Case {
	if c, ok := cs.First(pred); ok {
		return c
	}
	return def
}

// where keeps the pairs for which keep returns true.
func (cs Cases) where(keep func(c *Case) bool) Cases {
	m := ordered.New[any, *Case](cs.Count())
	cs.Each(func(c *Case, k any) bool {
		if keep(c) {
			m.Set(k, c)
		}
		return true
	})
	return Cases{m: m}
}

// Filter keeps the cases for which predicateOrKey holds. It is either a
// func(*Case) bool or a key whose resolved value must be exactly true.
func (cs Cases) Filter(predicateOrKey any) (Cases, error) {
	if pred, ok := predicateOrKey.(func(*Case) bool); ok {
		return cs.where(pred), nil
	}
	var err error
	out := cs.where(func(c *Case) bool {
		if err != nil {
			return false
		}
		var v any
		v, err = c.Get(predicateOrKey)
		b, ok := v.(bool)
		return err == nil && ok && b
	})
	if err != nil {
		return Cases{}, err
	}
	return out, nil
}

// Only keeps the cases with the given names.
func (cs Cases) Only(names ...string) Cases {
	return cs.where(func(c *Case) bool { return slices.Contains(names, c.name) })
}

// Except drops the cases with the given names.
func (cs Cases) Except(names ...string) Cases {
	return cs.where(func(c *Case) bool { return !slices.Contains(names, c.name) })
}

// OnlyValues keeps the cases with the given backing values. It is always
// empty for pure enums.
func (cs Cases) OnlyValues(vals ...any) Cases {
	norm := cfgNormalize()
	return cs.where(func(c *Case) bool { return c.backed && containsValue(vals, c.value, norm) })
}

// ExceptValues drops the cases with the given backing values. It is always
// empty for pure enums.
func (cs Cases) ExceptValues(vals ...any) Cases {
	norm := cfgNormalize()
	return cs.where(func(c *Case) bool { return c.backed && !containsValue(vals, c.value, norm) })
}

func containsValue(vals []any, v any, normalize bool) bool {
	return slices.ContainsFunc(vals, func(x any) bool { return values.Equal(x, v, normalize) })
}

// Sort orders the cases by name.
func (cs Cases) Sort() Cases {
	out, _ := cs.sortBy("name", false)
	return out
}

// SortDesc orders the cases by name, descending.
func (cs Cases) SortDesc() Cases {
	out, _ := cs.sortBy("name", true)
	return out
}

// SortBy orders the cases by the resolved key. The sort is stable.
func (cs Cases) SortBy(key any) (Cases, error) { return cs.sortBy(key, false) }

// SortByDesc orders the cases by the resolved key, descending. Ties keep
// their original order.
func (cs Cases) SortByDesc(key any) (Cases, error) { return cs.sortBy(key, true) }

// SortByValue orders the cases by backing value. It is empty for pure enums.
func (cs Cases) SortByValue() Cases {
	if !cs.backed() {
		return Cases{m: ordered.New[any, *Case](0)}
	}
	out, _ := cs.sortBy("value", false)
	return out
}

// SortByDescValue orders the cases by backing value, descending. It is empty
// for pure enums.
func (cs Cases) SortByDescValue() Cases {
	if !cs.backed() {
		return Cases{m: ordered.New[any, *Case](0)}
	}
	out, _ := cs.sortBy("value", true)
	return out
}

type sortEntry struct {
	key any
	c   *Case
	v   any
}

func (cs Cases) sortBy(key any, desc bool) (Cases, error) {
	entries := make([]sortEntry, 0, cs.Count())
	var err error
	cs.Each(func(c *Case, k any) bool {
		var v any
		if v, err = c.Get(key); err != nil {
			return false
		}
		entries = append(entries, sortEntry{key: k, c: c, v: v})
		return true
	})
	if err != nil {
		return Cases{}, err
	}

	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		if desc {
			return values.Compare(b.v, a.v)
		}
		return values.Compare(a.v, b.v)
	})

	m := ordered.New[any, *Case](len(entries))
	for _, e := range entries {
		m.Set(e.key, e.c)
	}
	return Cases{m: m}, nil
}

// mapKey resolves key for c and checks it can key a map.
func mapKey(c *Case, key any, normalize bool) (any, error) {
	v, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	if normalize {
		v = values.NormalizeInt(v)
	}
	if !values.Hashable(v) {
		return nil, fmt.Errorf("%w: case %s::%s resolved to %T", ErrUnhashableKey, c.typ.name, c.name, v)
	}
	return v, nil
}

// GroupBy partitions the cases by the resolved key. Groups appear in
// first-encountered order and are keyed by position.
func (cs Cases) GroupBy(key any) (*ordered.Map[any, Cases], error) {
	norm := cfgNormalize()
	groups := ordered.New[any, Cases](cs.Count())
	var err error
	cs.Each(func(c *Case, _ any) bool {
		var k any
		if k, err = mapKey(c, key, norm); err != nil {
			return false
		}
		g, ok := groups.Get(k)
		if !ok {
			g = Cases{m: ordered.New[any, *Case](1)}
			groups.Set(k, g)
		}
		g.m.Set(g.m.Len(), c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// KeyBy re-keys the cases by the resolved key. When cases share a key the
// later one wins and the key keeps its first position.
func (cs Cases) KeyBy(key any) (Cases, error) {
	norm := cfgNormalize()
	m := ordered.New[any, *Case](cs.Count())
	var err error
	cs.Each(func(c *Case, _ any) bool {
		var k any
		if k, err = mapKey(c, key, norm); err != nil {
			return false
		}
		m.Set(k, c)
		return true
	})
	if err != nil {
		return Cases{}, err
	}
	return Cases{m: m}, nil
}

// KeyByName re-keys the cases by name.
func (cs Cases) KeyByName() Cases {
	out, _ := cs.KeyBy("name")
	return out
}

// KeyByValue re-keys the cases by backing value. It is empty for pure enums.
func (cs Cases) KeyByValue() Cases {
	if !cs.backed() {
		return Cases{m: ordered.New[any, *Case](0)}
	}
	out, _ := cs.KeyBy("value")
	return out
}

// Pluck resolves valueKey for every case.
func (cs Cases) Pluck(valueKey any) ([]any, error) {
	out := make([]any, 0, cs.Count())
	var err error
	cs.Each(func(c *Case, _ any) bool {
		var v any
		if v, err = c.Get(valueKey); err != nil {
			return false
		}
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PluckBy resolves valueKey for every case, keyed by the resolved keyKey.
// Later cases win on shared keys.
func (cs Cases) PluckBy(valueKey, keyKey any) (*ordered.Map[any, any], error) {
	norm := cfgNormalize()
	out := ordered.New[any, any](cs.Count())
	var err error
	cs.Each(func(c *Case, _ any) bool {
		var k, v any
		if k, err = mapKey(c, keyKey, norm); err != nil {
			return false
		}
		if v, err = c.Get(valueKey); err != nil {
			return false
		}
		out.Set(k, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PluckAs is like Pluck but asserts every value to T.
func PluckAs[T any](cs Cases, valueKey any) ([]T, error) {
	vals, err := cs.Pluck(valueKey)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(vals))
	for i, v := range vals {
		t, ok := v.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %v is %T, not %T", ErrUnexpectedType, valueKey, v, *new(T))
		}
		out[i] = t
	}
	return out, nil
}

// Map applies fn to every case and keeps the keys.
func Map[T any](cs Cases, fn func(c *Case, key any) T) *ordered.Map[any, T] {
	out := ordered.New[any, T](cs.Count())
	cs.Each(func(c *Case, k any) bool {
		out.Set(k, fn(c, k))
		return true
	})
	return out
}

// MarshalJSON encodes the backing values, or the names for pure enums.
func (cs Cases) MarshalJSON() ([]byte, error) {
	if cs.backed() {
		return json.Marshal(cs.Values())
	}
	return json.Marshal(cs.Names())
}

// String returns the JSON encoding of the collection.
func (cs Cases) String() string {
	b, err := cs.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("enumx.Cases(%d)", cs.Count())
	}
	return string(b)
}
