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

// Package ui renders CLI status lines.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status is the outcome shown in a badge.
type Status int

const (
	StatusDone Status = iota
	StatusFail
	StatusSkip
	StatusInfo
)

var badges = map[Status]struct {
	label string
	color *color.Color
}{
	StatusDone: {" DONE ", color.New(color.BgGreen, color.FgBlack, color.Bold)},
	StatusFail: {" FAIL ", color.New(color.BgRed, color.FgWhite, color.Bold)},
	StatusSkip: {" SKIP ", color.New(color.BgYellow, color.FgBlack, color.Bold)},
	StatusInfo: {" INFO ", color.New(color.BgCyan, color.FgBlack, color.Bold)},
}

// Badge returns the colored label of s.
func Badge(s Status) string {
	b, ok := badges[s]
	if !ok {
		b = badges[StatusInfo]
	}
	return b.color.Sprint(b.label)
}

// Line writes "  BADGE message" to w.
func Line(w io.Writer, s Status, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", Badge(s), fmt.Sprintf(format, args...))
}

// Done reports a success.
func Done(w io.Writer, format string, args ...any) { Line(w, StatusDone, format, args...) }

// Fail reports a failure.
func Fail(w io.Writer, format string, args ...any) { Line(w, StatusFail, format, args...) }

// Skip reports work left untouched.
func Skip(w io.Writer, format string, args ...any) { Line(w, StatusSkip, format, args...) }

// Info reports a neutral fact.
func Info(w io.Writer, format string, args ...any) { Line(w, StatusInfo, format, args...) }

// Title writes a bold cyan heading.
func Title(w io.Writer, format string, args ...any) {
	color.New(color.FgCyan, color.Bold).Fprintf(w, format+"\n", args...)
}
