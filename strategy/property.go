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

package strategy

import (
	"dirpx.dev/enumx/apis"
)

const (
	// PropertyName is the intrinsic property holding the declared case name.
	PropertyName = "name"
	// PropertyValue is the intrinsic property holding the backing value.
	// It exists on backed enums only.
	PropertyValue = "value"
)

// NewPropertyStrategy creates an apis.Strategy resolving intrinsic properties.
func NewPropertyStrategy() apis.Strategy {
	return &propertyStrategy{}
}

// propertyStrategy answers "name" for every case and "value" for backed cases.
type propertyStrategy struct{}

// Ensure propertyStrategy implements apis.Strategy.
var _ apis.Strategy = (*propertyStrategy)(nil)

// TryResolve returns the intrinsic property named by key.
func (*propertyStrategy) TryResolve(c apis.Case, key apis.Key, _ apis.Config) (any, bool, error) {
	if c == nil || key.IsFunc() {
		return nil, false, nil
	}
	switch key.Name() {
	case PropertyName:
		return c.Name(), true, nil
	case PropertyValue:
		// Pure cases have no value property: fall through to methods/metadata.
		if v, ok := c.BackingValue(); ok {
			return v, true, nil
		}
	}
	return nil, false, nil
}
