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

// Resolver coordinates strategies to resolve keys against cases.
// Typical chain: Callable -> Property -> Method -> Metadata.
type Resolver interface {
	// Resolve returns the value of key for c. If no strategy handles the key
	// it returns a *KeyError wrapping ErrInvalidKey.
	Resolve(c Case, key Key, cfg Config) (any, error)
}
