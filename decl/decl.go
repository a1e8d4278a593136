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

// Package decl reads and writes enum declaration files.
//
// A declaration file is a YAML document describing one enum type:
//
//	name: app.Numbers
//	backed: int
//	meta:
//	  shape: circle
//	cases:
//	  - name: one
//	    value: 1
//	    meta: {color: red}
//	  - two: 2
//	  - three: 3
//
// A case is either the full mapping form, a one-entry "name: value" mapping,
// or a bare name for pure enums. "meta" is a mapping or a list of mappings;
// each mapping becomes one metadata store, in order.
package decl

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/meta"
)

// ErrInvalidFile is returned when a declaration file is malformed.
var ErrInvalidFile = errors.New("enumx(decl): invalid declaration file")

// Declaration is the parsed form of a declaration file.
type Declaration struct {
	// Name is the fully-qualified enum name.
	Name string
	// Kind is the backing kind.
	Kind apis.Kind
	// Meta holds the type-level stores.
	Meta []*meta.Store
	// Cases in declaration order.
	Cases []Case
	// Path is the file the declaration was loaded from, if any.
	Path string
}

// Case is a declared case.
type Case struct {
	Name     string
	Value    any
	HasValue bool
	Meta     []*meta.Store
}

type rawDeclaration struct {
	Name   string      `yaml:"name"`
	Backed string      `yaml:"backed"`
	Meta   yaml.Node   `yaml:"meta"`
	Cases  []yaml.Node `yaml:"cases"`
}

// Parse parses a declaration document.
func Parse(data []byte) (*Declaration, error) {
	var raw rawDeclaration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidFile)
	}

	d := &Declaration{Name: raw.Name}
	if raw.Backed != "" {
		k, err := apis.ParseKind(raw.Backed)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFile, raw.Name, err)
		}
		d.Kind = k
	}

	stores, err := parseMeta(&raw.Meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFile, raw.Name, err)
	}
	d.Meta = stores

	for i := range raw.Cases {
		c, err := parseCase(&raw.Cases[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: case %d: %w", ErrInvalidFile, raw.Name, i, err)
		}
		d.Cases = append(d.Cases, c)
	}
	return d, nil
}

// LoadFile reads and parses the declaration file at path.
func LoadFile(path string) (*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

func parseMeta(n *yaml.Node) ([]*meta.Store, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
		s, err := meta.FromNode(n)
		if err != nil {
			return nil, err
		}
		return []*meta.Store{s}, nil
	case yaml.SequenceNode:
		out := make([]*meta.Store, 0, len(n.Content))
		for _, item := range n.Content {
			s, err := meta.FromNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("meta must be a mapping or a list of mappings (line %d)", n.Line)
}

func parseCase(n *yaml.Node) (Case, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return Case{Name: n.Value}, nil
	case yaml.MappingNode:
		if len(n.Content) == 2 && n.Content[0].Value != "name" {
			if key := n.Content[0].Value; key == "value" || key == "meta" {
				return Case{}, fmt.Errorf("case %q has no name (line %d)", key, n.Line)
			}
			c := Case{Name: n.Content[0].Value, HasValue: true}
			if err := n.Content[1].Decode(&c.Value); err != nil {
				return Case{}, err
			}
			return c, nil
		}
		var raw struct {
			Name  string    `yaml:"name"`
			Value yaml.Node `yaml:"value"`
			Meta  yaml.Node `yaml:"meta"`
		}
		if err := n.Decode(&raw); err != nil {
			return Case{}, err
		}
		if raw.Name == "" {
			return Case{}, fmt.Errorf("case has no name (line %d)", n.Line)
		}
		c := Case{Name: raw.Name}
		if raw.Value.Kind != 0 {
			c.HasValue = true
			if err := raw.Value.Decode(&c.Value); err != nil {
				return Case{}, err
			}
		}
		stores, err := parseMeta(&raw.Meta)
		if err != nil {
			return Case{}, err
		}
		c.Meta = stores
		return c, nil
	}
	return Case{}, fmt.Errorf("case must be a name or a mapping (line %d)", n.Line)
}

// Options returns the enumx options describing d.
func (d *Declaration) Options() []enumx.Option {
	opts := make([]enumx.Option, 0, len(d.Meta)+len(d.Cases)+1)
	for _, s := range d.Meta {
		opts = append(opts, enumx.WithStore(s))
	}
	for _, c := range d.Cases {
		copts := make([]enumx.CaseOption, 0, len(c.Meta))
		for _, s := range c.Meta {
			copts = append(copts, enumx.WithStore(s))
		}
		if c.HasValue {
			opts = append(opts, enumx.WithValue(c.Name, c.Value, copts...))
		} else {
			opts = append(opts, enumx.WithCase(c.Name, copts...))
		}
	}
	if d.Path != "" {
		opts = append(opts, enumx.WithSource(d.Path))
	}
	return opts
}

// Build declares the enum type described by d.
func (d *Declaration) Build() (*enumx.Type, error) {
	return enumx.New(d.Name, d.Kind, d.Options()...)
}
