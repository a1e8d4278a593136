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

// Package typescript mirrors enum types into TypeScript enum declarations.
package typescript

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/internal/fslock"
)

// Outcome tells what Sync did to the TypeScript file.
type Outcome int

const (
	// Unchanged means the enum was already present and not forced.
	Unchanged Outcome = iota
	// Created means the file did not exist.
	Created
	// Appended means the file existed without the enum.
	Appended
	// Replaced means the enum was present and forced.
	Replaced
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Appended:
		return "appended"
	case Replaced:
		return "replaced"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Syncer writes TypeScript enums.
type Syncer struct {
	logger  *zap.Logger
	updater *fslock.Updater
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUpdater sets the locked file updater.
func WithUpdater(u *fslock.Updater) Option {
	return func(s *Syncer) {
		if u != nil {
			s.updater = u
		}
	}
}

// New returns a Syncer.
func New(opts ...Option) *Syncer {
	s := &Syncer{logger: zap.NewNop(), updater: fslock.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transform renders t as a TypeScript enum named after its short name.
// String values are single-quoted, int values bare, pure cases valueless.
func Transform(t *enumx.Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "export enum %s {\n", t.ShortName())
	for _, c := range t.Cases() {
		b.WriteString("    ")
		b.WriteString(c.Name())
		switch v := c.Value().(type) {
		case nil:
		case string:
			b.WriteString(" = " + quote(v))
		case int:
			b.WriteString(" = " + strconv.Itoa(v))
		default:
			fmt.Fprintf(&b, " = %v", v)
		}
		b.WriteString(",\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

// declPattern matches the declaration of enum name up to its closing brace.
// Braces inside quoted member values do not close the block.
func declPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^export enum ` + regexp.QuoteMeta(name) +
		`\b[^{]*\{(?:'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*"|[^'"}])*\}`)
}

// Sync writes t into the file at path: the file is created when missing, the
// enum appended when absent, and replaced only when force is set.
func (s *Syncer) Sync(ctx context.Context, t *enumx.Type, path string, force bool) (Outcome, error) {
	enum := Transform(t)
	pattern := declPattern(t.ShortName())
	outcome := Unchanged

	_, err := s.updater.Update(ctx, path, func(cur []byte, exists bool) ([]byte, bool, error) {
		content := string(cur)
		switch {
		case !exists:
			outcome = Created
			return []byte(enum), true, nil
		case !pattern.MatchString(content):
			outcome = Appended
			if content != "" && !strings.HasSuffix(content, "\n") {
				content += "\n"
			}
			return []byte(content + "\n" + enum), true, nil
		case force:
			outcome = Replaced
			replaced := pattern.ReplaceAllLiteralString(content, strings.TrimSpace(enum))
			return []byte(replaced), true, nil
		}
		return nil, false, nil
	})
	if err != nil {
		return Unchanged, err
	}

	s.logger.Debug("synced typescript enum",
		zap.String("enum", t.Name()),
		zap.String("path", path),
		zap.Stringer("outcome", outcome),
	)
	return outcome, nil
}
