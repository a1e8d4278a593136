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

// Package generator scaffolds enum declaration files.
package generator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"dirpx.dev/enumx/decl"
	"dirpx.dev/enumx/internal/casing"
	"dirpx.dev/enumx/internal/fslock"
)

// ErrInvalidRequest is returned for an unusable generation request.
var ErrInvalidRequest = errors.New("enumx(generator): invalid request")

// Request describes the enum to generate.
type Request struct {
	// Name is the enum name; "/" and "\" separate segments like ".".
	Name string
	// Cases are the case names, or name=value pairs for custom backing.
	Cases []string
	// Backing names a Backing case; empty infers pure or custom.
	Backing string
	// Force overwrites an existing file.
	Force bool
}

// Result describes a generation.
type Result struct {
	// Path of the declaration file.
	Path string
	// Declaration that was rendered.
	Declaration *decl.Declaration
	// Written is false when the file existed and Force was not set.
	Written bool
}

// Generator writes declaration files below a directory.
type Generator struct {
	dir     string
	logger  *zap.Logger
	updater *fslock.Updater
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithUpdater sets the locked file updater.
func WithUpdater(u *fslock.Updater) Option {
	return func(g *Generator) {
		if u != nil {
			g.updater = u
		}
	}
}

// New returns a Generator writing below dir.
func New(dir string, opts ...Option) *Generator {
	g := &Generator{dir: dir, logger: zap.NewNop(), updater: fslock.New()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NormalizeName turns "app/billing/Status" into "app.billing.Status".
func NormalizeName(name string) string {
	name = strings.NewReplacer("/", ".", "\\", ".").Replace(strings.TrimSpace(name))
	return strings.Trim(name, ".")
}

// Path returns the file the enum named name is generated in: one directory
// per leading segment and the snake-cased last segment.
func (g *Generator) Path(name string) string {
	segments := strings.Split(NormalizeName(name), ".")
	last := len(segments) - 1
	parts := append([]string{g.dir}, segments[:last]...)
	parts = append(parts, casing.Snake(segments[last], "_")+decl.Extensions[0])
	return filepath.Join(parts...)
}

// Declaration builds and validates the declaration for req.
func (g *Generator) Declaration(req Request) (*decl.Declaration, error) {
	name := NormalizeName(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: missing enum name", ErrInvalidRequest)
	}
	if len(req.Cases) == 0 {
		return nil, fmt.Errorf("%w: %s has no cases", ErrInvalidRequest, name)
	}
	backing, err := ResolveBacking(req.Backing, req.Cases)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	kind, cases, err := BackCases(backing, req.Cases)
	if err != nil {
		return nil, err
	}
	d := &decl.Declaration{Name: name, Kind: kind, Cases: cases}
	if _, err := d.Build(); err != nil {
		return nil, err
	}
	return d, nil
}

// Generate writes the declaration file for req. An existing file is kept
// unless req.Force is set.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	d, err := g.Declaration(req)
	if err != nil {
		return nil, err
	}
	content, err := decl.Render(d)
	if err != nil {
		return nil, err
	}

	path := g.Path(d.Name)
	d.Path = path
	written, err := g.updater.Update(ctx, path, func(_ []byte, exists bool) ([]byte, bool, error) {
		if exists && !req.Force {
			return nil, false, nil
		}
		return content, true, nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("generated enum declaration",
		zap.String("enum", d.Name),
		zap.String("path", path),
		zap.String("kind", d.Kind.String()),
		zap.Bool("written", written),
	)
	return &Result{Path: path, Declaration: d, Written: written}, nil
}
