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

// Package typeexpr derives documentation type expressions from runtime values.
//
// It is a type-lattice merge, not inference: Tag reports the runtime type of
// one observed value and Common merges the tags observed across all cases of
// an enum into a single expression such as "string", "?int" or "int|string".
package typeexpr

import (
	"path"
	"reflect"
	"strings"
	"sync"

	uref "dirpx.dev/enumx/utils/reflect"
)

// Tag names for predeclared kinds.
const (
	Null   = "null"
	Bool   = "bool"
	Int    = "int"
	Float  = "float"
	String = "string"
	Array  = "array"
	Map    = "map"
	Func   = "callable"
	Mixed  = "mixed"
)

// Namer lets a value choose its own tag, e.g. an enum case reporting the
// name of its enum type.
type Namer interface {
	TypeTag() string
}

// tagCache caches tags by type.
var tagCache sync.Map // key: reflect.Type, val: string

// Tag returns the runtime type tag of v.
func Tag(v any) string {
	if v == nil {
		return Null
	}
	if n, ok := v.(Namer); ok {
		if tag := n.TypeTag(); tag != "" {
			return tag
		}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return Null
	}
	return byType(rv.Type())
}

// byType resolves the tag for t with memoization.
func byType(t reflect.Type) string {
	if v, ok := tagCache.Load(t); ok {
		return v.(string)
	}
	tag := compute(t)
	tagCache.Store(t, tag)
	return tag
}

func compute(t reflect.Type) string {
	if base, err := uref.Normalize(t, 0); err == nil && uref.IsDeclared(base) {
		return path.Base(base.PkgPath()) + "." + stripTypeParams(base.Name())
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Map:
		return Map
	case reflect.Func:
		return Func
	default:
		return Mixed
	}
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// Common merges observed tags into one expression. Duplicates collapse and
// first-seen order is kept. A null next to exactly one other type renders as
// an optional "?T"; next to several types it is appended as "|null".
func Common(tags ...string) string {
	seen := make(map[string]bool, len(tags))
	distinct := make([]string, 0, len(tags))
	null := false
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		if t == Null {
			null = true
			continue
		}
		distinct = append(distinct, t)
	}

	switch {
	case len(distinct) == 0 && null:
		return Null
	case len(distinct) == 0:
		return Mixed
	case len(distinct) == 1 && null:
		return "?" + distinct[0]
	}
	out := strings.Join(distinct, "|")
	if null {
		out += "|" + Null
	}
	return out
}

// Of tags every value and merges the tags.
func Of(values ...any) string {
	tags := make([]string, len(values))
	for i, v := range values {
		tags[i] = Tag(v)
	}
	return Common(tags...)
}
