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

// Package casing converts case names between naming styles.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	title = cases.Title(language.Und, cases.NoLower)
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// Snake converts s to snake case joined by delim: "CaseOne", "caseOne" and
// "case one" all become "case_one" with delim "_".
func Snake(s, delim string) string {
	words := strings.Join(strings.Fields(title.String(s)), "")
	var b strings.Builder
	for i, r := range []rune(words) {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteString(delim)
		}
		b.WriteRune(r)
	}
	return lower.String(b.String())
}

// Kebab is Snake with "-".
func Kebab(s string) string { return Snake(s, "-") }

// Camel converts s to camel case: "case_one" and "case-one" become "caseOne".
func Camel(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return lowerFirst(strings.Join(words, ""))
}

// Upper returns s in upper case.
func Upper(s string) string { return upper.String(s) }

// Lower returns s in lower case.
func Lower(s string) string { return lower.String(s) }

func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

func lowerFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToLower(r)) + s[i+len(string(r)):]
	}
	return s
}
