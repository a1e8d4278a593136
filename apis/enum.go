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

package apis

import "dirpx.dev/enumx/meta"

// Method is a declared zero-argument instance method of an enum type.
type Method func(c Case) any

// Enum is the read-only, type-level view of an enumeration that strategies
// and tooling consult. Implementations must be immutable after declaration.
type Enum interface {
	// Name returns the fully-qualified name of the enum type.
	Name() string
	// Kind returns the backing kind.
	Kind() Kind
	// EnumCases returns the cases in declaration order.
	EnumCases() []Case
	// Metadata returns the type-level stores in declaration order.
	Metadata() []*meta.Store
	// Methods returns the declared method names in declaration order.
	Methods() []string
	// Method returns the declared method with the given name.
	Method(name string) (Method, bool)
}

// Case is the read-only view of a single enum case.
type Case interface {
	// Enum returns the owning enum type.
	Enum() Enum
	// Name returns the declared name.
	Name() string
	// BackingValue returns the backing value, if the enum is backed.
	BackingValue() (any, bool)
	// Index returns the declaration position.
	Index() int
	// Metadata returns the case-level stores in declaration order.
	Metadata() []*meta.Store
}
