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

package decl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/decl"
	"dirpx.dev/enumx/meta"
)

const numbersYAML = `# @method static int one()
name: app.Numbers
backed: int
meta:
  shape: circle
cases:
  - name: one
    value: 1
    meta:
      color: red
      shape: square
  - name: two
    value: 2
    meta: {color: green}
  - three: 3
`

func TestParse_AllForms(t *testing.T) {
	d, err := decl.Parse([]byte(numbersYAML))
	require.NoError(t, err)

	assert.Equal(t, "app.Numbers", d.Name)
	assert.Equal(t, apis.Int, d.Kind)
	require.Len(t, d.Meta, 1)
	assert.Equal(t, "circle", d.Meta[0].Get("shape"))

	require.Len(t, d.Cases, 3)
	assert.Equal(t, decl.Case{Name: "three", Value: 3, HasValue: true}, d.Cases[2])
	assert.Equal(t, 1, d.Cases[0].Value)
	assert.Equal(t, []string{"color", "shape"}, d.Cases[0].Meta[0].Names())
}

func TestParse_PureAndStoreLists(t *testing.T) {
	d, err := decl.Parse([]byte(`
name: app.Suit
meta:
  - {tier: base}
  - {tier: override}
cases:
  - Hearts
  - name: Spades
    meta:
      - {red: false}
      - {red: false, rank: 4}
`))
	require.NoError(t, err)
	assert.Equal(t, apis.Pure, d.Kind)
	assert.Len(t, d.Meta, 2)
	assert.Equal(t, decl.Case{Name: "Hearts"}, d.Cases[0])
	assert.Len(t, d.Cases[1].Meta, 2)
	assert.False(t, d.Cases[1].HasValue)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"not yaml":      "name: [",
		"missing name":  "cases: [A]",
		"bad kind":      "name: x.Bad\nbacked: float\n",
		"unknown field": "name: x.Bad\nlabel: nope\n",
		"meta scalar":   "name: x.Bad\nmeta: nope\n",
		"meta int key":  "name: x.Bad\nmeta: {1: one}\n",
		"case list":     "name: x.Bad\ncases:\n  - [A, B]\n",
		"value alone":   "name: x.Bad\nbacked: int\ncases:\n  - value: 3\n",
		"meta alone":    "name: x.Bad\ncases:\n  - meta: {color: red}\n",
		"nameless case": "name: x.Bad\nbacked: int\ncases:\n  - {value: 3, meta: {color: red}}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decl.Parse([]byte(doc))
			assert.ErrorIs(t, err, decl.ErrInvalidFile)
		})
	}

	_, err := decl.Parse([]byte("name: x.Bad\nmeta: {1: one}\n"))
	assert.ErrorIs(t, err, meta.ErrInvalidDeclaration)
}

func TestBuild(t *testing.T) {
	d, err := decl.Parse([]byte(numbersYAML))
	require.NoError(t, err)
	d.Path = "enums/numbers.enum.yaml"

	typ, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, "enums/numbers.enum.yaml", typ.Source())
	assert.Equal(t, []any{1, 2, 3}, typ.Values())

	sorted, err := typ.SortBy("shape")
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three", "one"}, sorted.Names())

	_, err = (&decl.Declaration{Name: "x.Bad", Kind: apis.Int, Cases: []decl.Case{{Name: "A"}}}).Build()
	assert.ErrorIs(t, err, enumx.ErrInvalidDeclaration)
}

func TestRender_RoundTrip(t *testing.T) {
	d, err := decl.Parse([]byte(numbersYAML))
	require.NoError(t, err)

	out, err := decl.Render(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "backed: int\n")
	assert.Contains(t, string(out), "  - three: 3\n")

	again, err := decl.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, d.Name, again.Name)
	assert.Equal(t, d.Kind, again.Kind)
	require.Len(t, again.Cases, len(d.Cases))
	for i := range d.Cases {
		assert.Equal(t, d.Cases[i].Name, again.Cases[i].Name)
		assert.Equal(t, d.Cases[i].Value, again.Cases[i].Value)
		assert.Len(t, again.Cases[i].Meta, len(d.Cases[i].Meta))
	}
}

func TestRender_Pure(t *testing.T) {
	out, err := decl.Render(&decl.Declaration{
		Name:  "app.Suit",
		Cases: []decl.Case{{Name: "Hearts"}, {Name: "Spades"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "name: app.Suit\ncases:\n  - Hearts\n  - Spades\n", string(out))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "suit.enum.yml"), "name: app.Suit\ncases: [Hearts]\n")
	writeFile(t, filepath.Join(dir, "a", "numbers.enum.yaml"), numbersYAML)
	writeFile(t, filepath.Join(dir, "a", "notes.yaml"), "ignored: true\n")

	files, err := decl.Discover([]string{dir, filepath.Join(dir, "a", "*.yaml"), filepath.Join(dir, "missing")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a", "numbers.enum.yaml"),
		filepath.Join(dir, "b", "suit.enum.yml"),
	}, files)
}

func TestLoader_LoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "numbers.enum.yaml"), numbersYAML)
	writeFile(t, filepath.Join(dir, "suit.enum.yaml"), "name: app.Suit\ncases: [Hearts, Spades]\n")

	types, err := decl.NewLoader().LoadAll([]string{dir})
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "app.Numbers", types[0].Name())
	assert.Equal(t, "app.Suit", types[1].Name())
	assert.Equal(t, filepath.Join(dir, "suit.enum.yaml"), types[1].Source())

	writeFile(t, filepath.Join(dir, "copy.enum.yaml"), "name: app.Suit\ncases: [Clubs]\n")
	_, err = decl.NewLoader().LoadAll([]string{dir})
	assert.ErrorIs(t, err, decl.ErrInvalidFile)
}

func TestLoader_Registration(t *testing.T) {
	enumx.Registry().Reset()
	t.Cleanup(enumx.Registry().Reset)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dice.enum.yaml"), "name: game.Dice\nbacked: int\ncases:\n  - one: 1\n  - six: 6\n")

	_, err := decl.NewLoader(decl.WithRegistration(), decl.WithLogger(nil)).LoadAll([]string{dir})
	require.NoError(t, err)

	typ, ok := enumx.Lookup("game.Dice")
	require.True(t, ok)
	assert.Equal(t, []any{1, 6}, typ.Values())
}
