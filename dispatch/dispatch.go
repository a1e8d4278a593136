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

// Package dispatch handles calls that no declared method answers.
//
// A Dispatcher holds three optional hooks: a static call on the enum type
// (Suit.Call("Hearts")), a call on a case (c.Call("color")) and the
// invocation of a case (c.Invoke()). Unset hooks fall back to the defaults:
// the static call returns the value (or name) of the case with that name,
// the case call returns the metadata with that name, the invocation returns
// the value (or name) of the case.
//
// Dispatchers are immutable and injected where needed; the root package keeps
// a single write-once global slot for applications that want one.
package dispatch

import (
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/strategy"
)

// StaticCallFunc handles a call of name on the enum type e.
type StaticCallFunc func(e apis.Enum, name string, args []any) (any, error)

// CallFunc handles a call of name on the case c.
type CallFunc func(c apis.Case, name string, args []any) (any, error)

// InvokeFunc handles the invocation of the case c.
type InvokeFunc func(c apis.Case, args []any) (any, error)

// Hooks groups the optional overrides. Nil hooks use the defaults.
type Hooks struct {
	OnStaticCall StaticCallFunc
	OnCall       CallFunc
	OnInvoke     InvokeFunc
}

// Dispatcher routes dynamic calls to hooks or defaults.
type Dispatcher struct {
	hooks Hooks
	cfg   apis.Config
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig sets the configuration used by the default metadata lookup.
func WithConfig(cfg apis.Config) Option {
	return func(d *Dispatcher) { d.cfg = cfg }
}

// New returns a Dispatcher using hooks.
func New(hooks Hooks, opts ...Option) *Dispatcher {
	d := &Dispatcher{hooks: hooks, cfg: config.DefaultConfig()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Default returns a Dispatcher without hooks.
func Default() *Dispatcher { return New(Hooks{}) }

// Hooks returns the configured hooks.
func (d *Dispatcher) Hooks() Hooks { return d.hooks }

// StaticCall handles the call of name on the enum type e.
func (d *Dispatcher) StaticCall(e apis.Enum, name string, args ...any) (any, error) {
	if d.hooks.OnStaticCall != nil {
		return d.hooks.OnStaticCall(e, name, args)
	}
	for _, c := range e.EnumCases() {
		if c.Name() == name {
			return ValueOrName(c), nil
		}
	}
	return nil, &apis.HydrationError{Kind: apis.ErrNoSuchName, Enum: e.Name(), Target: name}
}

// Call handles the call of name on the case c.
func (d *Dispatcher) Call(c apis.Case, name string, args ...any) (any, error) {
	if d.hooks.OnCall != nil {
		return d.hooks.OnCall(c, name, args)
	}
	if v, ok := strategy.LookupMetadata(c, name, d.cfg); ok {
		return v, nil
	}
	return nil, &apis.HydrationError{Kind: apis.ErrNoMetadata, Enum: c.Enum().Name(), Case: c.Name(), Key: name}
}

// Invoke handles the invocation of the case c.
func (d *Dispatcher) Invoke(c apis.Case, args ...any) (any, error) {
	if d.hooks.OnInvoke != nil {
		return d.hooks.OnInvoke(c, args)
	}
	return ValueOrName(c), nil
}

// ValueOrName returns the backing value of c, or its name when pure.
func ValueOrName(c apis.Case) any {
	if v, ok := c.BackingValue(); ok {
		return v
	}
	return c.Name()
}
