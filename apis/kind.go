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

package apis

import (
	"fmt"
	"strings"
)

// Kind is the backing kind of an enum type.
//
// Declarations spell kinds as "none", "int" and "string"; MarshalText and
// UnmarshalText use the same tokens so a Kind can sit directly in YAML or
// JSON documents.
type Kind uint8

const (
	// Pure enums have no backing value; cases compare by name.
	Pure Kind = iota
	// Int enums are backed by an integer value.
	Int
	// String enums are backed by a string value.
	String
)

// String returns the declaration token of the kind, or a diagnostic form
// for unknown values.
func (k Kind) String() string {
	switch k {
	case Pure:
		return "none"
	case Int:
		return "int"
	case String:
		return "string"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// ParseKind parses a declaration token. Matching is case-insensitive and
// ignores surrounding whitespace; "pure" is accepted for "none".
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Pure, fmt.Errorf("enumx: empty kind")
	}

	switch strings.ToLower(trimmed) {
	case "none", "pure":
		return Pure, nil
	case "int":
		return Int, nil
	case "string":
		return String, nil
	default:
		return Pure, fmt.Errorf("enumx: unknown kind %q", s)
	}
}

// MustParseKind is like ParseKind but panics on error.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Pure, Int, String:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("enumx: cannot marshal unknown kind %d", uint8(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure *k is left
// unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	value, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = value
	return nil
}
