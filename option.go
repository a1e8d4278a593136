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
	"fmt"

	"dirpx.dev/enumx/meta"
)

// Option configures an enum type declaration.
type Option interface {
	applyType(d *declaration)
}

// CaseOption configures a single case declaration.
type CaseOption interface {
	applyCase(d *declaration, c *caseDeclaration)
}

// declaration collects options before New validates and freezes them.
type declaration struct {
	stores  []*meta.Store
	methods []methodDeclaration
	cases   []caseDeclaration
	source  string
	errs    []error
}

type methodDeclaration struct {
	name string
	fn   func(*Case) any
}

type caseDeclaration struct {
	name     string
	value    any
	hasValue bool
	stores   []*meta.Store
}

// MetaOption attaches a metadata store. It works both on the enum type and on
// a single case.
type MetaOption struct {
	store *meta.Store
	err   error
}

// WithMeta attaches a store built from alternating name/value pairs.
func WithMeta(pairs ...any) MetaOption {
	s, err := meta.New(pairs...)
	return MetaOption{store: s, err: err}
}

// WithStore attaches an already built store.
func WithStore(s *meta.Store) MetaOption {
	return MetaOption{store: s}
}

func (o MetaOption) applyType(d *declaration) {
	if o.err != nil {
		d.errs = append(d.errs, o.err)
		return
	}
	if o.store != nil {
		d.stores = append(d.stores, o.store)
	}
}

func (o MetaOption) applyCase(d *declaration, c *caseDeclaration) {
	if o.err != nil {
		d.errs = append(d.errs, fmt.Errorf("case %q: %w", c.name, o.err))
		return
	}
	if o.store != nil {
		c.stores = append(c.stores, o.store)
	}
}

type optionFunc func(d *declaration)

func (f optionFunc) applyType(d *declaration) { f(d) }

// WithMethod declares a zero-argument instance method resolvable as a key.
func WithMethod(name string, fn func(*Case) any) Option {
	return optionFunc(func(d *declaration) {
		d.methods = append(d.methods, methodDeclaration{name: name, fn: fn})
	})
}

// WithCase declares a case of a pure enum.
func WithCase(name string, opts ...CaseOption) Option {
	return optionFunc(func(d *declaration) {
		c := caseDeclaration{name: name}
		for _, opt := range opts {
			if opt != nil {
				opt.applyCase(d, &c)
			}
		}
		d.cases = append(d.cases, c)
	})
}

// WithValue declares a case of a backed enum.
func WithValue(name string, value any, opts ...CaseOption) Option {
	return optionFunc(func(d *declaration) {
		c := caseDeclaration{name: name, value: value, hasValue: true}
		for _, opt := range opts {
			if opt != nil {
				opt.applyCase(d, &c)
			}
		}
		d.cases = append(d.cases, c)
	})
}

// WithSource overrides the file the type is declared in.
func WithSource(path string) Option {
	return optionFunc(func(d *declaration) { d.source = path })
}
