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

package annotator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/decl"
	"dirpx.dev/enumx/internal/annotator"
)

const numbersYAML = `# Numbers used by the app.
name: app.Numbers
backed: int
meta:
  shape: circle
cases:
  - name: one
    value: 1
    meta: {color: red}
  - two: 2
`

const numbersAnnotated = `# Numbers used by the app.
#
# @method static int one()
# @method static int two()
# @method ?string color()
# @method string shape()
name: app.Numbers
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func loadYAML(t *testing.T, path string) *enumx.Type {
	t.Helper()
	d, err := decl.LoadFile(path)
	require.NoError(t, err)
	typ, err := d.Build()
	require.NoError(t, err)
	return typ
}

func suits(t *testing.T, source string) *enumx.Type {
	t.Helper()
	typ, err := enumx.New("app.Suit", enumx.Pure,
		enumx.WithCase("Hearts", enumx.WithMeta("red", true)),
		enumx.WithCase("Spades"),
		enumx.WithCase("Clubs", enumx.WithMeta("red", false)),
		enumx.WithSource(source),
	)
	require.NoError(t, err)
	return typ
}

func TestCompute(t *testing.T) {
	typ := suits(t, "suit.go")

	got, err := annotator.Compute(typ)
	require.NoError(t, err)

	var lines []string
	for _, a := range got {
		lines = append(lines, a.String())
	}
	assert.Equal(t, []string{
		"@method static string Clubs()",
		"@method static string Hearts()",
		"@method static string Spades()",
		"@method ?bool red()",
	}, lines)
}

func TestParseAndMerge(t *testing.T) {
	existing := annotator.Parse("// @method static int one()\n// @method Color color() the color\n")
	require.Len(t, existing, 2)
	assert.Equal(t, annotator.Annotation{Name: "one", Text: "static int one()", Static: true}, existing[0])
	assert.Equal(t, "color", existing[1].Name)
	assert.False(t, existing[1].Static)

	merged := annotator.Merge([]annotator.Annotation{
		annotator.Instance("color", "string"),
		annotator.Instance("alpha", "int"),
	}, existing)
	require.Len(t, merged, 3)
	assert.Equal(t, "one", merged[0].Name)
	assert.Equal(t, "alpha", merged[1].Name)
	assert.Equal(t, "Color color() the color", merged[2].Text)
}

func TestAnnotate_YAML(t *testing.T) {
	path := writeFile(t, "numbers.enum.yaml", numbersYAML)
	typ := loadYAML(t, path)
	a := annotator.New()

	changed, err := a.Annotate(context.Background(), typ, false)
	require.NoError(t, err)
	assert.True(t, changed)

	got := readFile(t, path)
	assert.Contains(t, got, numbersAnnotated)
	assert.Contains(t, got, "  - two: 2\n")

	// The file still parses and a second pass is a no-op.
	typ = loadYAML(t, path)
	changed, err = a.Annotate(context.Background(), typ, false)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, got, readFile(t, path))
}

func TestAnnotate_KeepsExistingUnlessForced(t *testing.T) {
	path := writeFile(t, "numbers.enum.yaml", "# @method Color color()\n"+numbersYAML[len("# Numbers used by the app.\n"):])
	typ := loadYAML(t, path)
	a := annotator.New()

	_, err := a.Annotate(context.Background(), typ, false)
	require.NoError(t, err)
	assert.Contains(t, readFile(t, path), "# @method Color color()\n")

	changed, err := a.Annotate(context.Background(), typ, true)
	require.NoError(t, err)
	assert.True(t, changed)
	got := readFile(t, path)
	assert.NotContains(t, got, "Color color()")
	assert.Contains(t, got, "# @method ?string color()\n")
}

func TestAnnotate_Go(t *testing.T) {
	path := writeFile(t, "suit.go", `package app

import "dirpx.dev/enumx"

var (
	// Suit is a card suit.
	Suit = enumx.MustDefine("app.Suit", enumx.Pure,
		enumx.WithCase("Hearts"),
	)
)
`)
	changed, err := annotator.New().Annotate(context.Background(), suits(t, path), false)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Contains(t, readFile(t, path), `var (
	// Suit is a card suit.
	//
	// @method static string Clubs()
	// @method static string Hearts()
	// @method static string Spades()
	// @method ?bool red()
	Suit = enumx.MustDefine("app.Suit", enumx.Pure,
`)
}

func TestAnnotate_Errors(t *testing.T) {
	a := annotator.New()

	path := writeFile(t, "other.go", "package app\n")
	_, err := a.Annotate(context.Background(), suits(t, path), false)
	assert.ErrorIs(t, err, annotator.ErrAnchorNotFound)

	_, err = a.Annotate(context.Background(), suits(t, filepath.Join(t.TempDir(), "missing.go")), false)
	assert.ErrorIs(t, err, annotator.ErrNoSource)
}

func TestAnnotateAll_SharedFile(t *testing.T) {
	path := writeFile(t, "enums.go", `package app

var Suit = enumx.MustDefine("app.Suit", enumx.Pure)

var Color = enumx.MustDefine("app.Color", enumx.String)
`)
	color, err := enumx.New("app.Color", enumx.String,
		enumx.WithValue("Red", "red"),
		enumx.WithSource(path),
	)
	require.NoError(t, err)

	changed, err := annotator.New(annotator.WithConcurrency(2)).
		AnnotateAll(context.Background(), []*enumx.Type{suits(t, path), color}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"app.Suit", "app.Color"}, changed)

	got := readFile(t, path)
	assert.Contains(t, got, "// @method ?bool red()\nvar Suit")
	assert.Contains(t, got, "// @method static string Red()\nvar Color")
}
