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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	uref "dirpx.dev/enumx/utils/reflect"
)

type Color string
type point struct{}

func TestNormalize(t *testing.T) {
	var c Color
	pc := &c
	ppc := &pc

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
		err  error
	}{
		{"named", reflect.TypeOf(c), reflect.TypeOf(c), nil},
		{"ptr", reflect.TypeOf(pc), reflect.TypeOf(c), nil},
		{"ptr_ptr", reflect.TypeOf(ppc), reflect.TypeOf(c), nil},
		{"builtin", reflect.TypeOf(1), reflect.TypeOf(1), nil},
		{"slice", reflect.TypeOf([]Color{}), nil, uref.ErrReflectTypeNotNamed},
		{"anonymous", reflect.TypeOf(struct{}{}), nil, uref.ErrReflectTypeNotNamed},
		{"nil", nil, nil, uref.ErrReflectNilType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, 0)
			if !errors.Is(err, tc.err) || got != tc.want {
				t.Fatalf("Normalize(%v) = (%v,%v), want (%v,%v)", tc.typ, got, err, tc.want, tc.err)
			}
		})
	}
}

func TestNormalize_MaxUnwrapLimit(t *testing.T) {
	var p *point
	pp := &p
	if _, err := uref.Normalize(reflect.TypeOf(pp), 1); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Normalize(**point, 1) err = %v, want ErrReflectTypeNotNamed", err)
	}
	if got, err := uref.Normalize(reflect.TypeOf(pp), 2); err != nil || got != reflect.TypeOf(point{}) {
		t.Fatalf("Normalize(**point, 2) = (%v,%v), want (point,nil)", got, err)
	}
}

func TestIsDeclared(t *testing.T) {
	if !uref.IsDeclared(reflect.TypeOf(Color(""))) {
		t.Fatalf("IsDeclared(Color) = false, want true")
	}
	if uref.IsDeclared(reflect.TypeOf("")) {
		t.Fatalf("IsDeclared(string) = true, want false")
	}
	if uref.IsDeclared(nil) {
		t.Fatalf("IsDeclared(nil) = true, want false")
	}
}
