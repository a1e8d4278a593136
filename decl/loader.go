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

package decl

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"dirpx.dev/enumx"
)

// Extensions lists the suffixes of declaration files.
var Extensions = []string{".enum.yaml", ".enum.yml"}

// IsDeclarationFile reports whether path names a declaration file.
func IsDeclarationFile(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Discover expands paths into declaration files. Each path may be a file, a
// directory searched recursively, or a glob pattern. The result is sorted and
// free of duplicates.
func Discover(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("enumx(decl): bad pattern %q: %w", p, err)
		}
		for _, m := range matches {
			found, err := walk(m)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func walk(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if IsDeclarationFile(root) {
			return []string{filepath.Clean(root)}, nil
		}
		return nil, nil
	}

	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsDeclarationFile(path) {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

// Loader builds enum types from declaration files.
type Loader struct {
	logger   *zap.Logger
	register bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithRegistration registers every loaded type in the global registry.
func WithRegistration() LoaderOption {
	return func(l *Loader) { l.register = true }
}

// NewLoader returns a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds the type declared in the file at path.
func (l *Loader) Load(path string) (*enumx.Type, error) {
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.register {
		if err := enumx.Register(t); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	l.logger.Debug("loaded enum declaration",
		zap.String("enum", t.Name()),
		zap.String("path", path),
		zap.Int("cases", t.Count()),
	)
	return t, nil
}

// LoadAll discovers the declaration files under paths and builds their types
// in path order. Two files declaring the same enum name are rejected.
func (l *Loader) LoadAll(paths []string) ([]*enumx.Type, error) {
	files, err := Discover(paths)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("discovered enum declarations", zap.Strings("paths", paths), zap.Int("files", len(files)))

	seen := make(map[string]string, len(files))
	out := make([]*enumx.Type, 0, len(files))
	for _, f := range files {
		t, err := l.Load(f)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[t.Name()]; dup {
			return nil, fmt.Errorf("%w: enum %q is declared in both %s and %s", ErrInvalidFile, t.Name(), prev, f)
		}
		seen[t.Name()] = f
		out = append(out, t)
	}
	return out, nil
}
