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

package annotator

import (
	"cmp"
	"errors"
	"regexp"
	"slices"
	"strings"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/typeexpr"
)

// Annotation documents one method resolvable on an enum type.
type Annotation struct {
	// Name of the method.
	Name string
	// Text follows the "@method " marker, e.g. "static int one()".
	Text string
	// Static marks case accessors.
	Static bool
}

// String returns the annotation line without comment markers.
func (a Annotation) String() string { return "@method " + a.Text }

// ForCase documents the static accessor of a case: int for int-backed cases,
// string otherwise.
func ForCase(c *enumx.Case) Annotation {
	typ := "string"
	if c.Type().IsBackedByInt() {
		typ = "int"
	}
	return Annotation{Name: c.Name(), Text: "static " + typ + " " + c.Name() + "()", Static: true}
}

// Instance documents an instance method returning typ.
func Instance(name, typ string) Annotation {
	return Annotation{Name: name, Text: typ + " " + name + "()"}
}

// Compute returns the annotations of every case and every declared key of t,
// sorted.
func Compute(t *enumx.Type) ([]Annotation, error) {
	out := make([]Annotation, 0, t.Count())
	for _, c := range t.Cases() {
		out = append(out, ForCase(c))
	}
	for _, key := range enumx.DeclaredKeys(t) {
		typ, err := InferType(t, key)
		if err != nil {
			return nil, err
		}
		out = append(out, Instance(key, typ))
	}
	Sort(out)
	return out, nil
}

// InferType is enumx.InferType where cases lacking the key count as null.
func InferType(t *enumx.Type, key string) (string, error) {
	tags := make([]string, 0, t.Count())
	for _, c := range t.Cases() {
		v, err := c.Get(key)
		if err != nil && !errors.Is(err, enumx.ErrInvalidKey) {
			return "", err
		}
		tags = append(tags, typeexpr.Tag(v))
	}
	return typeexpr.Common(tags...), nil
}

var reMethod = regexp.MustCompile(`@method\s+((?:static)?\s*[^\s]+\s+([^\(\s]+).*)`)

// Parse extracts the annotations found in text.
func Parse(text string) []Annotation {
	var out []Annotation
	for _, m := range reMethod.FindAllStringSubmatch(text, -1) {
		body := strings.TrimSpace(m[1])
		out = append(out, Annotation{Name: m[2], Text: body, Static: strings.HasPrefix(body, "static")})
	}
	return out
}

// Merge overlays existing annotations on computed ones by method name and
// sorts the result.
func Merge(computed, existing []Annotation) []Annotation {
	byName := make(map[string]int, len(computed)+len(existing))
	out := make([]Annotation, 0, len(computed)+len(existing))
	for _, list := range [][]Annotation{computed, existing} {
		for _, a := range list {
			if i, ok := byName[a.Name]; ok {
				out[i] = a
				continue
			}
			byName[a.Name] = len(out)
			out = append(out, a)
		}
	}
	Sort(out)
	return out
}

// Sort orders static annotations first, then by name.
func Sort(as []Annotation) {
	slices.SortStableFunc(as, func(a, b Annotation) int {
		if a.Static != b.Static {
			if a.Static {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
