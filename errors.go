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
	"errors"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/meta"
	"dirpx.dev/enumx/registry"
)

var (
	// ErrNilRegistry is returned when a nil registry is encountered.
	ErrNilRegistry = errors.New("enumx: nil registry")
	// ErrNilResolver is returned when a nil resolver is encountered.
	ErrNilResolver = errors.New("enumx: nil resolver")
	// ErrNilType is returned when a nil enum type is registered.
	ErrNilType = errors.New("enumx: nil enum type")
	// ErrHooksAlreadySet is returned when the global dispatch hooks are
	// installed a second time.
	ErrHooksAlreadySet = errors.New("enumx: dispatch hooks already set")
	// ErrInvalidDeclaration is returned when an enum type declaration is malformed.
	ErrInvalidDeclaration = errors.New("enumx: invalid enum declaration")
	// ErrUnhashableKey is returned when a grouping or keying key resolves to
	// a value that cannot key a map.
	ErrUnhashableKey = errors.New("enumx: resolved key is not hashable")
	// ErrUnexpectedType is returned when a plucked value has another type
	// than the one requested.
	ErrUnexpectedType = errors.New("enumx: unexpected value type")
)

// Re-exported sentinels, so callers match with errors.Is without importing apis.
var (
	ErrInvalidKey                 = apis.ErrInvalidKey
	ErrNoSuchName                 = apis.ErrNoSuchName
	ErrNoSuchValue                = apis.ErrNoSuchValue
	ErrNoMatch                    = apis.ErrNoMatch
	ErrNoMetadata                 = apis.ErrNoMetadata
	ErrInvalidMetadataDeclaration = meta.ErrInvalidDeclaration
	ErrConflictingRegistration    = registry.ErrConflictingRegistration
)

type (
	// KeyError reports a key that resolves on no strategy.
	KeyError = apis.KeyError
	// HydrationError reports a failed lookup from a name, value, key or metadata.
	HydrationError = apis.HydrationError
)
