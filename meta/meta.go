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

// Package meta holds the named metadata attached to enum types and cases.
//
// A Store is an ordered, immutable mapping from metadata name to value. It is
// created once, when the enum is declared, and never mutated afterwards, so it
// can be read from any number of goroutines without locking.
package meta

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDeclaration is returned when a store is declared with a
	// non-string name, an empty name or a dangling name without a value.
	ErrInvalidDeclaration = errors.New("enumx(meta): invalid metadata declaration")
	// ErrDuplicateName is returned when the same name is declared twice in one store.
	ErrDuplicateName = errors.New("enumx(meta): duplicate metadata name")
)

// Store is an ordered set of metadata name/value pairs.
type Store struct {
	// names keeps the declaration order.
	names []string
	// values maps a name to its declared value.
	values map[string]any
}

// New builds a Store from alternating name/value pairs:
//
//	meta.New("color", "red", "shape", "triangle")
//
// Every name must be a non-empty string.
func New(pairs ...any) (*Store, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: missing value for %v", ErrInvalidDeclaration, pairs[len(pairs)-1])
	}
	s := &Store{
		names:  make([]string, 0, len(pairs)/2),
		values: make(map[string]any, len(pairs)/2),
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: the name of meta must be a string, got %T", ErrInvalidDeclaration, pairs[i])
		}
		if err := s.add(name, pairs[i+1]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Must is like New but panics on error. Intended for package-level declarations.
func Must(pairs ...any) *Store {
	s, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromNode builds a Store from a YAML mapping node, keeping the key order of
// the document. Keys must be string scalars: `1: foo` or `true: bar` fail with
// ErrInvalidDeclaration.
func FromNode(n *yaml.Node) (*Store, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidDeclaration)
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: metadata must be a mapping", ErrInvalidDeclaration, n.Line)
	}
	s := &Store{
		names:  make([]string, 0, len(n.Content)/2),
		values: make(map[string]any, len(n.Content)/2),
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
			return nil, fmt.Errorf("%w: line %d: the name of meta must be a string", ErrInvalidDeclaration, k.Line)
		}
		var val any
		if err := v.Decode(&val); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidDeclaration, v.Line, err)
		}
		if err := s.add(k.Value, val); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) add(name string, value any) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDeclaration)
	}
	if _, dup := s.values[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	s.names = append(s.names, name)
	s.values[name] = value
	return nil
}

// Names returns the declared names in declaration order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Has reports whether name is declared, even when its value is nil.
func (s *Store) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[name]
	return ok
}

// Get returns the value declared for name, or nil.
func (s *Store) Get(name string) any {
	v, _ := s.Lookup(name)
	return v
}

// Lookup returns the value declared for name and whether it was declared.
func (s *Store) Lookup(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of declared names.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Each calls fn for every pair in declaration order until fn returns false.
func (s *Store) Each(fn func(name string, value any) bool) {
	if s == nil {
		return
	}
	for _, n := range s.names {
		if !fn(n, s.values[n]) {
			return
		}
	}
}
