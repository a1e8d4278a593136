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
	"errors"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"strings"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/meta"
	"dirpx.dev/enumx/ordered"
	"dirpx.dev/enumx/strategy"
)

// Kind is the backing kind of an enum type.
type Kind = apis.Kind

const (
	// Pure enums have no backing value.
	Pure = apis.Pure
	// Int enums are backed by an int.
	Int = apis.Int
	// String enums are backed by a string.
	String = apis.String
)

// Type is a declared enumeration. It is immutable once New returns.
type Type struct {
	name    string
	kind    Kind
	cases   []*Case
	byName  map[string]*Case
	stores  []*meta.Store
	methods map[string]apis.Method
	order   []string
	source  string
}

// Ensure Type implements apis.Enum.
var _ apis.Enum = (*Type)(nil)

// New declares an enum type. The source file defaults to the caller's file.
func New(name string, kind Kind, opts ...Option) (*Type, error) {
	return newType(2, name, kind, opts)
}

// Define declares an enum type and registers it in the global registry.
func Define(name string, kind Kind, opts ...Option) (*Type, error) {
	t, err := newType(2, name, kind, opts)
	if err != nil {
		return nil, err
	}
	if err := Register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefine is like Define but panics on error.
func MustDefine(name string, kind Kind, opts ...Option) *Type {
	t, err := newType(2, name, kind, opts)
	if err == nil {
		err = Register(t)
	}
	if err != nil {
		panic(err)
	}
	return t
}

func newType(skip int, name string, kind Kind, opts []Option) (*Type, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty enum name", ErrInvalidDeclaration)
	}
	if kind != Pure && kind != Int && kind != String {
		return nil, fmt.Errorf("%w: %s has unknown kind %d", ErrInvalidDeclaration, name, kind)
	}

	d := &declaration{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyType(d)
		}
	}
	if len(d.errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDeclaration, name, errors.Join(d.errs...))
	}
	if d.source == "" {
		if _, file, _, ok := runtime.Caller(skip); ok {
			d.source = file
		}
	}

	t := &Type{
		name:    name,
		kind:    kind,
		cases:   make([]*Case, 0, len(d.cases)),
		byName:  make(map[string]*Case, len(d.cases)),
		stores:  d.stores,
		methods: make(map[string]apis.Method, len(d.methods)),
		source:  d.source,
	}

	for _, m := range d.methods {
		if err := t.addMethod(m); err != nil {
			return nil, err
		}
	}

	values := make(map[any]string, len(d.cases))
	for i, cd := range d.cases {
		if cd.name == "" {
			return nil, fmt.Errorf("%w: %s: case %d has no name", ErrInvalidDeclaration, name, i)
		}
		if _, dup := t.byName[cd.name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate case %q", ErrInvalidDeclaration, name, cd.name)
		}
		c := &Case{typ: t, name: cd.name, index: i, stores: cd.stores}
		switch {
		case kind == Pure && cd.hasValue:
			return nil, fmt.Errorf("%w: %s: pure case %q has a value", ErrInvalidDeclaration, name, cd.name)
		case kind != Pure && !cd.hasValue:
			return nil, fmt.Errorf("%w: %s: backed case %q has no value", ErrInvalidDeclaration, name, cd.name)
		case kind != Pure:
			v, err := backingValue(kind, cd.value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: case %q: %w", ErrInvalidDeclaration, name, cd.name, err)
			}
			if other, dup := values[v]; dup {
				return nil, fmt.Errorf("%w: %s: cases %q and %q share the value %v",
					ErrInvalidDeclaration, name, other, cd.name, v)
			}
			values[v] = cd.name
			c.value, c.backed = v, true
		}
		t.cases = append(t.cases, c)
		t.byName[c.name] = c
	}
	return t, nil
}

func (t *Type) addMethod(m methodDeclaration) error {
	switch {
	case m.name == "":
		return fmt.Errorf("%w: %s: method has no name", ErrInvalidDeclaration, t.name)
	case m.fn == nil:
		return fmt.Errorf("%w: %s: method %q is nil", ErrInvalidDeclaration, t.name, m.name)
	case m.name == strategy.PropertyName || m.name == strategy.PropertyValue:
		return fmt.Errorf("%w: %s: method %q shadows an intrinsic property", ErrInvalidDeclaration, t.name, m.name)
	}
	if _, dup := t.methods[m.name]; dup {
		return fmt.Errorf("%w: %s: duplicate method %q", ErrInvalidDeclaration, t.name, m.name)
	}
	fn := m.fn
	t.methods[m.name] = func(c apis.Case) any {
		own, _ := c.(*Case)
		return fn(own)
	}
	t.order = append(t.order, m.name)
	return nil
}

// backingValue checks v against kind and returns its canonical form.
func backingValue(kind Kind, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch kind {
	case Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if u := rv.Uint(); u <= math.MaxInt {
				return int(u), nil
			}
			return nil, fmt.Errorf("value %v overflows int", v)
		}
	case String:
		if rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	}
	return nil, fmt.Errorf("value %v (%T) does not match the %s backing", v, v, kind)
}

// Name returns the declared name of the type.
func (t *Type) Name() string { return t.name }

// ShortName returns the last segment of the name.
func (t *Type) ShortName() string {
	if i := strings.LastIndexAny(t.name, "./\\"); i >= 0 {
		return t.name[i+1:]
	}
	return t.name
}

// Kind returns the backing kind.
func (t *Type) Kind() Kind { return t.kind }

// IsPure reports whether the type has no backing values.
func (t *Type) IsPure() bool { return t.kind == Pure }

// IsBacked reports whether every case carries a backing value.
func (t *Type) IsBacked() bool { return t.kind != Pure }

// IsBackedByInt reports whether the cases are backed by ints.
func (t *Type) IsBackedByInt() bool { return t.kind == Int }

// IsBackedByString reports whether the cases are backed by strings.
func (t *Type) IsBackedByString() bool { return t.kind == String }

// Cases returns the cases in declaration order.
func (t *Type) Cases() []*Case {
	out := make([]*Case, len(t.cases))
	copy(out, t.cases)
	return out
}

// EnumCases returns the cases as apis.Case values.
func (t *Type) EnumCases() []apis.Case {
	out := make([]apis.Case, len(t.cases))
	for i, c := range t.cases {
		out[i] = c
	}
	return out
}

// Case returns the case with the given name, or nil.
func (t *Type) Case(name string) *Case { return t.byName[name] }

// Metadata returns the type-level stores in declaration order.
func (t *Type) Metadata() []*meta.Store {
	out := make([]*meta.Store, len(t.stores))
	copy(out, t.stores)
	return out
}

// Methods returns the declared method names in declaration order.
func (t *Type) Methods() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Method returns the declared method with the given name.
func (t *Type) Method(name string) (apis.Method, bool) {
	m, ok := t.methods[name]
	return m, ok
}

// Source returns the file the type was declared in.
func (t *Type) Source() string { return t.source }

// String returns the name of the type.
func (t *Type) String() string { return t.name }

// Collect returns all cases keyed by declaration position.
func (t *Type) Collect() Cases { return collect(t.cases) }

// Count returns the number of cases.
func (t *Type) Count() int { return len(t.cases) }

// Names returns the case names in declaration order.
func (t *Type) Names() []string { return t.Collect().Names() }

// Values returns the backing values in declaration order, empty when pure.
func (t *Type) Values() []any { return t.Collect().Values() }

// Has reports whether target matches one of the cases.
func (t *Type) Has(target any) bool { return t.Collect().Has(target) }

// DoesntHave is the negation of Has.
func (t *Type) DoesntHave(target any) bool { return !t.Has(target) }

// Call performs a static call through the global dispatcher.
func (t *Type) Call(name string, args ...any) (any, error) {
	return Dispatcher().StaticCall(t, name, args...)
}

// Filter delegates to Collect().Filter.
func (t *Type) Filter(predicateOrKey any) (Cases, error) { return t.Collect().Filter(predicateOrKey) }

// Only delegates to Collect().Only.
func (t *Type) Only(names ...string) Cases { return t.Collect().Only(names...) }

// Except delegates to Collect().Except.
func (t *Type) Except(names ...string) Cases { return t.Collect().Except(names...) }

// OnlyValues delegates to Collect().OnlyValues.
func (t *Type) OnlyValues(values ...any) Cases { return t.Collect().OnlyValues(values...) }

// ExceptValues delegates to Collect().ExceptValues.
func (t *Type) ExceptValues(values ...any) Cases { return t.Collect().ExceptValues(values...) }

// Sort delegates to Collect().Sort.
func (t *Type) Sort() Cases { return t.Collect().Sort() }

// SortDesc delegates to Collect().SortDesc.
func (t *Type) SortDesc() Cases { return t.Collect().SortDesc() }

// SortBy delegates to Collect().SortBy.
func (t *Type) SortBy(key any) (Cases, error) { return t.Collect().SortBy(key) }

// SortByDesc delegates to Collect().SortByDesc.
func (t *Type) SortByDesc(key any) (Cases, error) { return t.Collect().SortByDesc(key) }

// SortByValue delegates to Collect().SortByValue.
func (t *Type) SortByValue() Cases { return t.Collect().SortByValue() }

// SortByDescValue delegates to Collect().SortByDescValue.
func (t *Type) SortByDescValue() Cases { return t.Collect().SortByDescValue() }

// GroupBy delegates to Collect().GroupBy.
func (t *Type) GroupBy(key any) (*ordered.Map[any, Cases], error) { return t.Collect().GroupBy(key) }

// KeyBy delegates to Collect().KeyBy.
func (t *Type) KeyBy(key any) (Cases, error) { return t.Collect().KeyBy(key) }

// KeyByName delegates to Collect().KeyByName.
func (t *Type) KeyByName() Cases { return t.Collect().KeyByName() }

// KeyByValue delegates to Collect().KeyByValue.
func (t *Type) KeyByValue() Cases { return t.Collect().KeyByValue() }

// Pluck delegates to Collect().Pluck.
func (t *Type) Pluck(valueKey any) ([]any, error) { return t.Collect().Pluck(valueKey) }

// PluckBy delegates to Collect().PluckBy.
func (t *Type) PluckBy(valueKey, keyKey any) (*ordered.Map[any, any], error) {
	return t.Collect().PluckBy(valueKey, keyKey)
}
