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

// Package enumx adds collections, metadata and reverse lookups to enumerations.
//
// An enum type is declared once, with its cases, metadata and methods, and is
// immutable afterwards:
//
//	var Numbers = enumx.MustDefine("app.Numbers", enumx.Int,
//		enumx.WithMethod("isOdd", func(c *enumx.Case) any { return c.Value().(int)%2 == 1 }),
//		enumx.WithValue("one", 1, enumx.WithMeta("color", "red")),
//		enumx.WithValue("two", 2, enumx.WithMeta("color", "green")),
//		enumx.WithValue("three", 3, enumx.WithMeta("color", "blue")),
//	)
//
// # Keys
//
// Most operations take a key: a string or a callable taking a *Case. A key
// resolves for a case by trying, in order:
//
//  1. the callable itself;
//  2. the intrinsic properties "name" and, for backed enums, "value";
//  3. a method declared with WithMethod;
//  4. metadata: the case's own stores, newest first, then the type's stores.
//
// A key matching nothing fails with a *KeyError wrapping ErrInvalidKey.
//
// # Collections
//
// Type.Collect returns a Cases collection. Filter, Only, Except, SortBy,
// GroupBy, KeyBy, Pluck and friends never mutate their receiver; they build a
// new collection, or an ordered.Map for keyed results. Sorting is stable.
// KeyBy keeps the later case when two cases share a key. Value-based
// operations on pure enums return empty collections rather than errors.
//
// # Hydration
//
// FromName, FromValue, FromKey and FromMetadata find cases by name, backing
// value, resolved key or metadata. The strict forms fail with a
// *HydrationError; the Try forms report absence instead but still return
// resolver errors.
//
// # Global state
//
// Like the registry and resolver, the configuration lives in a read-mostly
// snapshot published through an atomic pointer. Readers never lock. Writers
// (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll) take a build
// mutex, derive a new snapshot and swap it in. SetRegistry and SetResolver pin
// their layer so configuration changes stop rebuilding it until
// UnpinRegistry / UnpinResolver.
//
// The snapshot also holds the dispatcher used by Type.Call, Case.Call and
// Case.Invoke. Its hooks can be installed once with SetHooks; code that needs
// different hooks should build its own dispatch.Dispatcher.
//
// # Tooling
//
// DeclaredKeys and InferType feed the annotator in internal/annotator, which
// documents the keys of an enum type in its source file. The cmd/enumx binary
// also scaffolds declarations and mirrors enums into TypeScript.
package enumx
