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

// Builder assembles the Registry of enum types and the key Resolver for a
// Config. It runs whenever the global snapshot changes, so it receives the
// previous instances to carry declared types over.
type Builder interface {
	// BuildRegistry returns a registry holding every type of prev, if any.
	BuildRegistry(cfg Config, prev Registry) Registry
	// BuildResolver returns the key resolution chain for reg. prev is the
	// resolver being replaced, or nil on first build.
	BuildResolver(cfg Config, reg Registry, prev Resolver) Resolver
}
