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

package generator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/decl"
	"dirpx.dev/enumx/internal/casing"
)

// ErrInvalidCase is returned when a case argument cannot be backed.
var ErrInvalidCase = errors.New("enumx(generator): invalid case")

// Backing lists the strategies assigning values to generated cases. Each
// case carries a human "label" shown by the interactive prompt.
var Backing = enumx.MustDefine("enumx.Backing", enumx.Pure,
	enumx.WithCase("pure", enumx.WithMeta("label", "The enum is pure, no values needed")),
	enumx.WithCase("custom", enumx.WithMeta("label", "Custom values to assign manually")),
	enumx.WithCase("snake", enumx.WithMeta("label", "The name in snake case (case_one)")),
	enumx.WithCase("camel", enumx.WithMeta("label", "The name in camel case (caseOne)")),
	enumx.WithCase("kebab", enumx.WithMeta("label", "The name in kebab case (case-one)")),
	enumx.WithCase("upper", enumx.WithMeta("label", "The name in upper case (CASEONE)")),
	enumx.WithCase("lower", enumx.WithMeta("label", "The name in lower case (caseone)")),
	enumx.WithCase("int0", enumx.WithMeta("label", "Integer starting from 0 (0, 1, 2...)")),
	enumx.WithCase("int1", enumx.WithMeta("label", "Integer starting from 1 (1, 2, 3...)")),
	enumx.WithCase("bitwise", enumx.WithMeta("label", "Bitwise flag (1, 2, 4...)")),
)

// Label returns the label of a backing strategy.
func Label(backing *enumx.Case) string {
	v, _ := backing.Meta("label")
	s, _ := v.(string)
	return s
}

// ResolveBacking returns the named strategy. An empty name selects custom
// when any case carries "=", pure otherwise.
func ResolveBacking(name string, cases []string) (*enumx.Case, error) {
	if name == "" {
		name = "pure"
		for _, c := range cases {
			if strings.Contains(c, "=") {
				name = "custom"
				break
			}
		}
	}
	c, err := Backing.FromName(name)
	if err != nil {
		return nil, fmt.Errorf("unknown backing %q, expected one of %s: %w",
			name, strings.Join(Backing.Names(), ", "), err)
	}
	return c, nil
}

// BackCases pairs every case name with its value.
func BackCases(backing *enumx.Case, names []string) (enumx.Kind, []decl.Case, error) {
	out := make([]decl.Case, 0, len(names))
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		var value any
		switch backing.Name() {
		case "pure":
		case "custom":
			n, v, ok := strings.Cut(raw, "=")
			if !ok {
				return enumx.Pure, nil, fmt.Errorf("%w: %q has no value, expected name=value", ErrInvalidCase, raw)
			}
			name = strings.TrimSpace(n)
			value = parseValue(strings.TrimSpace(v))
		case "snake":
			value = casing.Snake(name, "_")
		case "camel":
			value = casing.Camel(name)
		case "kebab":
			value = casing.Kebab(name)
		case "upper":
			value = casing.Upper(name)
		case "lower":
			value = casing.Lower(name)
		case "int0":
			value = i
		case "int1":
			value = i + 1
		case "bitwise":
			value = 1 << i
		}
		if name == "" {
			return enumx.Pure, nil, fmt.Errorf("%w: empty name in %q", ErrInvalidCase, raw)
		}
		c := decl.Case{Name: name}
		if backing.Name() != "pure" {
			c.Value, c.HasValue = value, true
		}
		out = append(out, c)
	}
	return kindOf(out), out, nil
}

func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return s
}

// kindOf infers the backing kind from the first case.
func kindOf(cases []decl.Case) enumx.Kind {
	if len(cases) == 0 || !cases[0].HasValue {
		return enumx.Pure
	}
	if _, ok := cases[0].Value.(int); ok {
		return enumx.Int
	}
	return enumx.String
}
