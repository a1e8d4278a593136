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

package enumx_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
)

func TestNew_Declaration(t *testing.T) {
	typ := numbers(t)

	assert.Equal(t, "app.Numbers", typ.Name())
	assert.Equal(t, "Numbers", typ.ShortName())
	assert.Equal(t, enumx.Int, typ.Kind())
	assert.True(t, typ.IsBacked())
	assert.True(t, typ.IsBackedByInt())
	assert.False(t, typ.IsBackedByString())
	assert.False(t, typ.IsPure())
	assert.Equal(t, 3, typ.Count())
	assert.Equal(t, []string{"one", "two", "three"}, typ.Names())
	assert.Equal(t, []any{1, 2, 3}, typ.Values())
	assert.Equal(t, []string{"isOdd"}, typ.Methods())
	assert.Len(t, typ.Metadata(), 1)
	assert.Equal(t, "fixtures_test.go", filepath.Base(typ.Source()))

	for i, c := range typ.Cases() {
		assert.Equal(t, i, c.Index())
		assert.Same(t, typ, c.Type())
	}
}

func TestNew_SourceDefaultsToCaller(t *testing.T) {
	typ, err := enumx.New("app.Local", enumx.Pure, enumx.WithCase("A"))
	require.NoError(t, err)
	assert.Equal(t, "type_test.go", filepath.Base(typ.Source()))

	typ, err = enumx.New("app.Local", enumx.Pure, enumx.WithCase("A"), enumx.WithSource("enums/local.enum.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "enums/local.enum.yaml", typ.Source())
}

func TestNew_NormalizesBackingValues(t *testing.T) {
	type level int8
	type code string

	ints, err := enumx.New("app.Level", enumx.Int,
		enumx.WithValue("low", int8(1)),
		enumx.WithValue("mid", uint16(2)),
		enumx.WithValue("high", level(3)),
	)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, ints.Values())

	strs, err := enumx.New("app.Code", enumx.String, enumx.WithValue("ok", code("OK")))
	require.NoError(t, err)
	assert.Equal(t, []any{"OK"}, strs.Values())
	assert.True(t, strs.IsBackedByString())
}

func TestNew_Invalid(t *testing.T) {
	odd := func(*enumx.Case) any { return nil }
	tests := []struct {
		name string
		kind enumx.Kind
		typ  string
		opts []enumx.Option
	}{
		{name: "empty name", kind: enumx.Pure, typ: " "},
		{name: "unknown kind", kind: enumx.Kind(7), typ: "x.Bad"},
		{name: "duplicate case", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithCase("A"), enumx.WithCase("A")}},
		{name: "empty case name", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithCase("")}},
		{name: "pure case with value", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithValue("A", 1)}},
		{name: "backed case without value", kind: enumx.Int, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithCase("A")}},
		{name: "duplicate value", kind: enumx.Int, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithValue("A", 1), enumx.WithValue("B", int64(1))}},
		{name: "string for int", kind: enumx.Int, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithValue("A", "1")}},
		{name: "int for string", kind: enumx.String, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithValue("A", 1)}},
		{name: "nil value", kind: enumx.String, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithValue("A", nil)}},
		{name: "method shadows name", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithMethod("name", odd)}},
		{name: "method shadows value", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithMethod("value", odd)}},
		{name: "duplicate method", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithMethod("m", odd), enumx.WithMethod("m", odd)}},
		{name: "nil method", kind: enumx.Pure, typ: "x.Bad",
			opts: []enumx.Option{enumx.WithMethod("m", nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enumx.New(tt.typ, tt.kind, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, enumx.ErrInvalidDeclaration)
		})
	}
}

func TestNew_InvalidMetadata(t *testing.T) {
	_, err := enumx.New("x.Bad", enumx.Pure, enumx.WithMeta(1, "one"))
	require.Error(t, err)
	assert.ErrorIs(t, err, enumx.ErrInvalidDeclaration)
	assert.ErrorIs(t, err, enumx.ErrInvalidMetadataDeclaration)

	_, err = enumx.New("x.Bad", enumx.Pure, enumx.WithCase("A", enumx.WithMeta("dangling")))
	assert.ErrorIs(t, err, enumx.ErrInvalidMetadataDeclaration)
}

func TestType_HasAndCase(t *testing.T) {
	typ := numbers(t)
	assert.True(t, typ.Has(2))
	assert.True(t, typ.Has(int64(3)))
	assert.True(t, typ.Has(typ.Case("one")))
	assert.False(t, typ.Has("one"))
	assert.True(t, typ.DoesntHave(4))
	assert.Nil(t, typ.Case("four"))

	pure := suits(t)
	assert.True(t, pure.Has("Hearts"))
	assert.False(t, pure.Has(1))
	assert.Empty(t, pure.Values())
}
