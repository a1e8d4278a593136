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

package config

import (
	"dirpx.dev/enumx/apis"
)

const (
	// DefaultMetadataNewestFirst represents the default for MetadataNewestFirst.
	// When true, the most recently declared case-level store wins.
	DefaultMetadataNewestFirst = true
	// DefaultNormalizeIntegers represents the default for NormalizeIntegers.
	// When true, integer values of any width compare equal.
	DefaultNormalizeIntegers = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MetadataNewestFirst: DefaultMetadataNewestFirst,
		NormalizeIntegers:   DefaultNormalizeIntegers,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMetadataNewestFirst sets the MetadataNewestFirst option.
func WithMetadataNewestFirst(newest bool) Option {
	return func(c *apis.Config) {
		c.MetadataNewestFirst = newest
	}
}

// WithNormalizeIntegers sets the NormalizeIntegers option.
func WithNormalizeIntegers(normalize bool) Option {
	return func(c *apis.Config) {
		c.NormalizeIntegers = normalize
	}
}
