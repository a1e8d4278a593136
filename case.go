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

	"github.com/goccy/go-json"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/dispatch"
	"dirpx.dev/enumx/meta"
	"dirpx.dev/enumx/strategy"
	"dirpx.dev/enumx/utils/values"
)

// Case is a single case of an enum type. Cases are created by New and are
// compared by identity.
type Case struct {
	typ    *Type
	name   string
	value  any
	backed bool
	index  int
	stores []*meta.Store
}

// Ensure Case implements apis.Case.
var _ apis.Case = (*Case)(nil)

// Type returns the enum type the case belongs to.
func (c *Case) Type() *Type { return c.typ }

// Enum returns the enum type as apis.Enum.
func (c *Case) Enum() apis.Enum { return c.typ }

// Name returns the declared name.
func (c *Case) Name() string { return c.name }

// Value returns the backing value, or nil for pure cases.
func (c *Case) Value() any { return c.value }

// BackingValue returns the backing value and whether the case has one.
func (c *Case) BackingValue() (any, bool) { return c.value, c.backed }

// Index returns the declaration position.
func (c *Case) Index() int { return c.index }

// Metadata returns the case-level stores in declaration order.
func (c *Case) Metadata() []*meta.Store {
	out := make([]*meta.Store, len(c.stores))
	copy(out, c.stores)
	return out
}

// Get resolves key for the case. A key is a property, method or metadata
// name, or a callable taking the case.
func (c *Case) Get(key any) (any, error) {
	k, err := c.typ.key(key)
	if err != nil {
		return nil, err
	}
	return resolve(c, k)
}

// Meta resolves name against the metadata of the case and then of its type.
func (c *Case) Meta(name string) (any, error) {
	if v, ok := strategy.LookupMetadata(c, name, Config()); ok {
		return v, nil
	}
	return nil, &HydrationError{Kind: ErrNoMetadata, Enum: c.typ.name, Case: c.name, Key: name}
}

// Is reports whether target designates this case: the case itself, its
// value for backed enums, or its name for pure enums.
func (c *Case) Is(target any) bool {
	switch t := target.(type) {
	case nil:
		return false
	case *Case:
		return t == c
	}
	if c.backed {
		return values.Equal(c.value, target, Config().NormalizeIntegers)
	}
	s, ok := target.(string)
	return ok && s == c.name
}

// IsNot is the negation of Is.
func (c *Case) IsNot(target any) bool { return !c.Is(target) }

// In reports whether any of targets designates this case.
func (c *Case) In(targets ...any) bool {
	for _, t := range targets {
		if c.Is(t) {
			return true
		}
	}
	return false
}

// NotIn is the negation of In.
func (c *Case) NotIn(targets ...any) bool { return !c.In(targets...) }

// Call performs a dynamic call of name through the global dispatcher.
func (c *Case) Call(name string, args ...any) (any, error) {
	return Dispatcher().Call(c, name, args...)
}

// Invoke invokes the case through the global dispatcher.
func (c *Case) Invoke(args ...any) (any, error) {
	return Dispatcher().Invoke(c, args...)
}

// MarshalJSON encodes the backing value, or the name for pure cases.
func (c *Case) MarshalJSON() ([]byte, error) {
	return json.Marshal(dispatch.ValueOrName(c))
}

// String returns the name of the case.
func (c *Case) String() string { return c.name }

// GoString returns the qualified case name, e.g. Suit::Hearts.
func (c *Case) GoString() string { return c.typ.name + "::" + c.name }

// TypeTag names the enum type for type inference.
func (c *Case) TypeTag() string { return c.typ.name }

// key turns a user key into an apis.Key.
func (t *Type) key(key any) (apis.Key, error) {
	switch k := key.(type) {
	case string:
		return apis.NamedKey(k), nil
	case apis.Key:
		return k, nil
	case apis.KeyFunc:
		return apis.FuncKey(k), nil
	case func(apis.Case) (any, error):
		return apis.FuncKey(k), nil
	case func(*Case) (any, error):
		return caseKey(func(c *Case) (any, error) { return k(c) }), nil
	case func(*Case) any:
		return caseKey(func(c *Case) (any, error) { return k(c), nil }), nil
	case func(*Case) bool:
		return caseKey(func(c *Case) (any, error) { return k(c), nil }), nil
	case func(*Case) string:
		return caseKey(func(c *Case) (any, error) { return k(c), nil }), nil
	case func(*Case) int:
		return caseKey(func(c *Case) (any, error) { return k(c), nil }), nil
	}
	return apis.Key{}, apis.NewKeyError(apis.NamedKey(fmt.Sprintf("%T", key)), t.name,
		fmt.Errorf("unsupported key type"))
}

func caseKey(fn func(*Case) (any, error)) apis.Key {
	return apis.FuncKey(func(c apis.Case) (any, error) {
		own, ok := c.(*Case)
		if !ok {
			return nil, fmt.Errorf("enumx: %T is not an enumx case", c)
		}
		return fn(own)
	})
}
