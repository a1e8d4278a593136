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
	"dirpx.dev/enumx/meta"
)

// NewMetadataStrategy creates an apis.Strategy resolving declared metadata.
func NewMetadataStrategy() apis.Strategy {
	return metadataStrategy{}
}

// metadataStrategy is the last step of the chain. It probes the case's own
// stores first and the enum's stores second; the first store that has the
// name wins, even if the declared value is nil.
type metadataStrategy struct{}

// Ensure metadataStrategy implements apis.Strategy.
var _ apis.Strategy = (*metadataStrategy)(nil)

// TryResolve looks key up in the metadata stores of c and its enum.
func (metadataStrategy) TryResolve(c apis.Case, key apis.Key, cfg apis.Config) (any, bool, error) {
	if c == nil || key.IsFunc() || key.Name() == "" {
		return nil, false, nil
	}
	v, ok := LookupMetadata(c, key.Name(), cfg)
	return v, ok, nil
}

// LookupMetadata resolves name against the metadata chain of c only,
// ignoring properties and methods.
func LookupMetadata(c apis.Case, name string, cfg apis.Config) (any, bool) {
	own := c.Metadata()
	if cfg.MetadataNewestFirst {
		for i := len(own) - 1; i >= 0; i-- {
			if v, ok := own[i].Lookup(name); ok {
				return v, true
			}
		}
	} else if v, ok := firstHaving(own, name); ok {
		return v, true
	}

	if e := c.Enum(); e != nil {
		return firstHaving(e.Metadata(), name)
	}
	return nil, false
}

// firstHaving returns the value of name in the first store declaring it.
func firstHaving(stores []*meta.Store, name string) (any, bool) {
	for _, s := range stores {
		if v, ok := s.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}
