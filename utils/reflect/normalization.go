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

package reflect

import (
	"errors"
	"reflect"
)

// DefaultMaxUnwrap bounds pointer unwrapping. A value of 8 should be
// sufficient for all practical purposes.
const DefaultMaxUnwrap = 8

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type (e.g., anonymous struct, func, []int).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
)

// Normalize unwraps pointers and returns the nearest named type, or an error
// if none is found within maxUnwrap steps.
//
// Unlike containers, pointers do not change what a value "is": a *Color is
// documented as a Color. Slices, arrays and maps are left alone so callers
// can report them as collections.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Ptr && i < maxUnwrap; i++ {
		t = t.Elem()
	}

	// Named, return; anonymous -> error
	if t.Kind() != reflect.Ptr && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// IsDeclared reports whether t is a named type declared in a package, as
// opposed to a predeclared type such as int or string.
func IsDeclared(t reflect.Type) bool {
	return t != nil && t.Name() != "" && t.PkgPath() != ""
}
