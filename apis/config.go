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

// Config carries read-only resolution knobs that influence strategies and
// hydration. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// MetadataNewestFirst controls the probe order of a case's own metadata
	// stores. If true, the most recently declared store is consulted first;
	// otherwise stores are consulted in declaration order. Type-level stores
	// are always consulted after case-level ones, in declaration order.
	MetadataNewestFirst bool

	// NormalizeIntegers makes integer values of any width compare equal when
	// matching, filtering and keying (int8(1) == int64(1) == 1). When false,
	// comparisons are strictly typed.
	NormalizeIntegers bool
}
