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
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
)

// numbers declares {one=1, two=2, three=3} with a color per case, a shape on
// the type that "one" overrides, and an isOdd method.
func numbers(t *testing.T) *enumx.Type {
	t.Helper()
	typ, err := enumx.New("app.Numbers", enumx.Int,
		enumx.WithMeta("shape", "circle"),
		enumx.WithMethod("isOdd", func(c *enumx.Case) any { return c.Value().(int)%2 == 1 }),
		enumx.WithValue("one", 1, enumx.WithMeta("color", "red", "shape", "square")),
		enumx.WithValue("two", 2, enumx.WithMeta("color", "green")),
		enumx.WithValue("three", 3, enumx.WithMeta("color", "blue")),
	)
	require.NoError(t, err)
	return typ
}

// suits declares a pure enum with a boolean "red" flag on two cases.
func suits(t *testing.T) *enumx.Type {
	t.Helper()
	typ, err := enumx.New("app.Suit", enumx.Pure,
		enumx.WithCase("Hearts", enumx.WithMeta("red", true, "symbol", "♥")),
		enumx.WithCase("Diamonds", enumx.WithMeta("red", true, "symbol", "♦")),
		enumx.WithCase("Clubs", enumx.WithMeta("red", false, "symbol", "♣")),
		enumx.WithCase("Spades", enumx.WithMeta("symbol", "♠")),
	)
	require.NoError(t, err)
	return typ
}

func names(cs enumx.Cases) []string { return cs.Names() }
