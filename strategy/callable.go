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

// NewCallableStrategy creates an apis.Strategy that invokes callable keys.
func NewCallableStrategy() apis.Strategy {
	return &callableStrategy{}
}

// callableStrategy is the fast path: if the key is a callable, invoke it
// with the case and stop the chain.
type callableStrategy struct{}

// Ensure callableStrategy implements apis.Strategy.
var _ apis.Strategy = (*callableStrategy)(nil)

// TryResolve invokes key when it is callable.
func (*callableStrategy) TryResolve(c apis.Case, key apis.Key, _ apis.Config) (any, bool, error) {
	fn := key.Func()
	if fn == nil || c == nil {
		return nil, false, nil
	}
	v, err := fn(c)
	if err != nil {
		return nil, true, err
	}
	return v, true, nil
}
