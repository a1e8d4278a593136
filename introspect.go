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

package enumx

import (
	"dirpx.dev/enumx/meta"
	"dirpx.dev/enumx/typeexpr"
)

// MetadataNames returns the metadata names declared on t and on its cases,
// type stores first, deduplicated in first-seen order.
func MetadataNames(t *Type) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(stores []*meta.Store) {
		for _, s := range stores {
			for _, n := range s.Names() {
				if !seen[n] {
					seen[n] = true
					out = append(out, n)
				}
			}
		}
	}
	add(t.stores)
	for _, c := range t.cases {
		add(c.stores)
	}
	return out
}

// DeclaredKeys returns every name resolvable as a key besides the intrinsic
// properties: metadata names followed by declared methods.
func DeclaredKeys(t *Type) []string {
	out := MetadataNames(t)
	seen := make(map[string]bool, len(out))
	for _, n := range out {
		seen[n] = true
	}
	for _, m := range t.order {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// InferType resolves key for every case and merges the observed type tags,
// e.g. "string", "?int" or "int|string".
func InferType(t *Type, key any) (string, error) {
	tags := make([]string, 0, len(t.cases))
	for _, c := range t.cases {
		v, err := c.Get(key)
		if err != nil {
			return "", err
		}
		tags = append(tags, typeexpr.Tag(v))
	}
	return typeexpr.Common(tags...), nil
}
