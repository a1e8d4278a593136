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

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when a key matches no property, declared method
// or metadata of a case, or when a callable key fails.
var ErrInvalidKey = errors.New("enumx: invalid key")

// KeyError describes a key that could not be resolved for an enum.
type KeyError struct {
	// Key is the textual form of the key ("callable" for callables).
	Key string
	// Enum is the fully-qualified enum name.
	Enum string
	// Callable is true when the key was a callable.
	Callable bool
	// Err is the underlying failure of a callable, if any.
	Err error
}

// Error implements error.
func (e *KeyError) Error() string {
	target := fmt.Sprintf("%q", e.Key)
	if e.Callable {
		target = "the given callable"
	}
	msg := fmt.Sprintf("%s is not a valid key for enum %q", target, e.Enum)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both ErrInvalidKey and the callable's own error.
func (e *KeyError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidKey, e.Err}
	}
	return []error{ErrInvalidKey}
}

// NewKeyError builds a KeyError for key on enum.
func NewKeyError(key Key, enum string, err error) *KeyError {
	return &KeyError{Key: key.String(), Enum: enum, Callable: key.IsFunc(), Err: err}
}

var (
	// ErrNoSuchName is returned by strict name hydration when no case has the name.
	ErrNoSuchName = errors.New("enumx: no such name")
	// ErrNoSuchValue is returned by strict value hydration when no case has the
	// backing value, or when the enum is pure.
	ErrNoSuchValue = errors.New("enumx: no such value")
	// ErrNoMatch is returned by strict key and metadata hydration when no case matches.
	ErrNoMatch = errors.New("enumx: no match")
	// ErrNoMetadata is returned by metadata-only resolution when neither the
	// case nor its enum declares the name.
	ErrNoMetadata = errors.New("enumx: no metadata")
)

// HydrationError describes a failed reverse lookup.
type HydrationError struct {
	// Kind is one of ErrNoSuchName, ErrNoSuchValue, ErrNoMatch or ErrNoMetadata.
	Kind error
	// Enum is the fully-qualified enum name.
	Enum string
	// Case is the case name, for ErrNoMetadata.
	Case string
	// Key is the key or metadata name, for ErrNoMatch and ErrNoMetadata.
	Key string
	// Target is the name or value that was looked up.
	Target any
}

// Error implements error.
func (e *HydrationError) Error() string {
	switch e.Kind {
	case ErrNoSuchName:
		return fmt.Sprintf("%q is not a valid name for enum %q", fmt.Sprint(e.Target), e.Enum)
	case ErrNoSuchValue:
		return fmt.Sprintf("%s is not a valid backing value for enum %q", quoteValue(e.Target), e.Enum)
	case ErrNoMatch:
		return fmt.Sprintf("invalid value for the key %q for enum %q", e.Key, e.Enum)
	case ErrNoMetadata:
		return fmt.Sprintf("the case %s::%s has no %q meta set", e.Enum, e.Case, e.Key)
	}
	return fmt.Sprintf("enumx: hydration of enum %q failed", e.Enum)
}

// Unwrap returns the error kind.
func (e *HydrationError) Unwrap() error { return e.Kind }

func quoteValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
