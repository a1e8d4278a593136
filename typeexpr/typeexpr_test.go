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

package typeexpr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/enumx/typeexpr"
)

type Level int

type tagged struct{}

func (tagged) TypeTag() string { return "app.Suit" }

func TestTag(t *testing.T) {
	var nilPtr *Level
	lvl := Level(3)

	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"nil_ptr", nilPtr, "null"},
		{"bool", true, "bool"},
		{"int", 1, "int"},
		{"uint8", uint8(1), "int"},
		{"float", 1.5, "float"},
		{"string", "red", "string"},
		{"slice", []string{"a"}, "array"},
		{"map", map[string]any{}, "map"},
		{"func", func() {}, "callable"},
		{"named", lvl, "typeexpr_test.Level"},
		{"named_ptr", &lvl, "typeexpr_test.Level"},
		{"stdlib_named", time.Second, "time.Duration"},
		{"namer", tagged{}, "app.Suit"},
		{"anonymous_struct", struct{}{}, "mixed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, typeexpr.Tag(tc.in))
			// memoized path yields the same answer
			assert.Equal(t, tc.want, typeexpr.Tag(tc.in))
		})
	}
}

func TestCommon(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"single", []string{"string", "string", "string"}, "string"},
		{"nullable", []string{"string", "null", "string"}, "?string"},
		{"union", []string{"int", "string", "int"}, "int|string"},
		{"union_with_null", []string{"int", "null", "string"}, "int|string|null"},
		{"only_null", []string{"null", "null"}, "null"},
		{"empty", nil, "mixed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, typeexpr.Common(tc.in...))
		})
	}
}

func TestOf(t *testing.T) {
	assert.Equal(t, "?int", typeexpr.Of(1, nil, 3))
	assert.Equal(t, "bool", typeexpr.Of(true, false))
}
