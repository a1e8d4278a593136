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

// Package annotator documents the methods of enum types in their source files.
//
// The annotations live in the comment block right above the declaration: the
// "name:" line of a YAML declaration file, or the enumx.Define, MustDefine or
// New call of a Go file.
package annotator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/internal/fslock"
)

var (
	// ErrNoSource is returned for types without a source file.
	ErrNoSource = errors.New("enumx(annotator): enum has no source file")
	// ErrAnchorNotFound is returned when the declaration is not found in the source file.
	ErrAnchorNotFound = errors.New("enumx(annotator): declaration not found")
)

// Annotator patches source files.
type Annotator struct {
	logger  *zap.Logger
	updater *fslock.Updater
	limit   int
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Annotator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithUpdater sets the locked file updater.
func WithUpdater(u *fslock.Updater) Option {
	return func(a *Annotator) {
		if u != nil {
			a.updater = u
		}
	}
}

// WithConcurrency bounds the files annotated at once by AnnotateAll.
func WithConcurrency(n int) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.limit = n
		}
	}
}

// New returns an Annotator.
func New(opts ...Option) *Annotator {
	a := &Annotator{logger: zap.NewNop(), updater: fslock.New(), limit: 4}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// style describes the comment syntax and declaration anchor of a file kind.
type style struct {
	prefix string
	anchor *regexp.Regexp
}

func styleFor(t *enumx.Type) style {
	name := regexp.QuoteMeta(t.Name())
	if filepath.Ext(t.Source()) == ".go" {
		return style{
			prefix: "//",
			anchor: regexp.MustCompile(`enumx\.(?:MustDefine|Define|New)\(\s*"` + name + `"`),
		}
	}
	return style{
		prefix: "#",
		anchor: regexp.MustCompile(`^name:\s*["']?` + name + `["']?\s*(?:#.*)?$`),
	}
}

// Annotate writes the annotations of t into its source file. Annotations
// already present are kept unless force is set. It reports whether the file
// changed.
func (a *Annotator) Annotate(ctx context.Context, t *enumx.Type, force bool) (bool, error) {
	if t.Source() == "" {
		return false, fmt.Errorf("%w: %s", ErrNoSource, t.Name())
	}
	computed, err := Compute(t)
	if err != nil {
		return false, err
	}

	st := styleFor(t)
	changed, err := a.updater.Update(ctx, t.Source(), func(cur []byte, exists bool) ([]byte, bool, error) {
		if !exists {
			return nil, false, fmt.Errorf("%w: %s is missing", ErrNoSource, t.Source())
		}
		next, err := patch(string(cur), st, computed, force)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s in %s", err, t.Name(), t.Source())
		}
		return []byte(next), next != string(cur), nil
	})
	if err != nil {
		return false, err
	}

	a.logger.Debug("annotated enum",
		zap.String("enum", t.Name()),
		zap.String("path", t.Source()),
		zap.Int("annotations", len(computed)),
		zap.Bool("changed", changed),
	)
	return changed, nil
}

// AnnotateAll annotates every type concurrently and returns the names of the
// types whose file changed, in input order.
func (a *Annotator) AnnotateAll(ctx context.Context, types []*enumx.Type, force bool) ([]string, error) {
	changed := make([]bool, len(types))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)
	for i, t := range types {
		i, t := i, t
		g.Go(func() error {
			ok, err := a.Annotate(ctx, t, force)
			changed[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for i, ok := range changed {
		if ok {
			out = append(out, types[i].Name())
		}
	}
	return out, nil
}

// patch rewrites the comment block above the anchor line of content.
func patch(content string, st style, computed []Annotation, force bool) (string, error) {
	lines := strings.Split(content, "\n")
	at := -1
	for i, l := range lines {
		if st.anchor.MatchString(l) {
			at = i
			break
		}
	}
	if at < 0 {
		return "", ErrAnchorNotFound
	}

	start := at
	for start > 0 && strings.HasPrefix(strings.TrimSpace(lines[start-1]), st.prefix) {
		start--
	}
	block := lines[start:at]

	annotations := computed
	if !force {
		annotations = Merge(computed, Parse(strings.Join(block, "\n")))
	}

	indent := lines[at][:len(lines[at])-len(strings.TrimLeft(lines[at], " \t"))]
	var kept []string
	for _, l := range block {
		if !strings.Contains(l, "@method") {
			kept = append(kept, l)
		}
	}
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == st.prefix {
		kept = kept[:len(kept)-1]
	}
	if len(kept) > 0 {
		kept = append(kept, indent+st.prefix)
	}
	for _, an := range annotations {
		kept = append(kept, indent+st.prefix+" "+an.String())
	}

	out := make([]string, 0, len(lines)-len(block)+len(kept))
	out = append(out, lines[:start]...)
	out = append(out, kept...)
	out = append(out, lines[at:]...)
	return strings.Join(out, "\n"), nil
}
