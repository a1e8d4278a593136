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

// Package values implements the equality and ordering used when matching,
// sorting and keying resolved values.
package values

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// NormalizeInt converts predeclared integer kinds (int8 ... uint64) to int so
// that values of different widths key and compare alike. Declared integer
// types (type Level int) and anything else are returned unchanged, as are
// unsigned values that do not fit an int.
func NormalizeInt(v any) any {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
	case uint:
		if n <= math.MaxInt {
			return int(n)
		}
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		if uint64(n) <= math.MaxInt {
			return int(n)
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n)
		}
	}
	return v
}

// IsInt reports whether v holds a value of any integer kind, declared or not.
func IsInt(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// IsString reports whether v holds a value of string kind, declared or not.
func IsString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}

// Hashable reports whether v can be used as a map key.
func Hashable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

// Equal reports whether a and b are identical: same type and same value.
// With normalize, integers of different widths compare by value.
// Non-comparable values (slices, maps) compare deeply.
func Equal(a, b any, normalize bool) bool {
	if normalize {
		a, b = NormalizeInt(a), NormalizeInt(b)
	}
	if Hashable(a) && Hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// class ranks the kinds of values Compare orders.
type class int

const (
	classNil class = iota
	classBool
	classNumber
	classString
	classOther
)

// Compare is a total order over resolved values and returns -1, 0 or +1.
// Values rank by class first: nil < bool < number < string < anything else.
// Strings holding a finite number ("10", " 9.5") belong to the number class.
// Within a class:
//   - booleans compare false < true;
//   - numbers compare by exact value, NaN before every other number;
//   - strings and other values compare lexicographically by formatted text.
func Compare(a, b any) int {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}
	switch ca {
	case classNil:
		return 0
	case classBool:
		return compareBool(reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool())
	case classNumber:
		return compareNumber(a, b)
	}
	return strings.Compare(text(a), text(b))
}

func classOf(v any) class {
	if v == nil {
		return classNil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		if _, ok := numericString(reflect.ValueOf(v).String()); ok {
			return classNumber
		}
		return classString
	}
	return classOther
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareNumber compares exactly, so wide integers and floats stay transitive.
func compareNumber(a, b any) int {
	af, bf := number(a), number(b)
	an, bn := af == nil, bf == nil
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}
	return af.Cmp(bf)
}

// number returns the exact value of a number-class v, or nil for NaN.
func number(v any) *big.Float {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Float).SetUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return nil
		}
		return new(big.Float).SetFloat64(rv.Float())
	case reflect.String:
		f, _ := numericString(rv.String())
		return new(big.Float).SetFloat64(f)
	}
	return nil
}

// numericString parses s as a finite decimal number. "NaN" and "inf" are text.
func numericString(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func text(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if reflect.TypeOf(v).Kind() == reflect.String {
		return reflect.ValueOf(v).String()
	}
	return fmt.Sprint(v)
}
