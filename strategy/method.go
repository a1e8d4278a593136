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

// NewMethodStrategy creates an apis.Strategy that invokes methods declared
// directly on the case's enum type.
func NewMethodStrategy() apis.Strategy {
	return &methodStrategy{}
}

// methodStrategy consults the method table captured at declaration time
// (reflection-free lookup). Dispatch fallback hooks are never consulted here.
type methodStrategy struct{}

// Ensure methodStrategy implements apis.Strategy.
var _ apis.Strategy = (*methodStrategy)(nil)

// TryResolve invokes the declared method named by key.
func (*methodStrategy) TryResolve(c apis.Case, key apis.Key, _ apis.Config) (any, bool, error) {
	if c == nil || key.IsFunc() || key.Name() == "" {
		return nil, false, nil
	}
	e := c.Enum()
	if e == nil {
		return nil, false, nil
	}
	m, ok := e.Method(key.Name())
	if !ok || m == nil {
		return nil, false, nil
	}
	return m(c), true, nil
}
