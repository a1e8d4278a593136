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

package enumx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/builder"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/dispatch"
)

func init() {
	// Initialize state with default cfg, reg, res and dispatcher.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil)
	s.bld = b
	s.dsp = dispatch.New(dispatch.Hooks{}, dispatch.WithConfig(s.cfg))
	// Store the initial state atomically.
	st.Store(s)
}

// Register adds t to the global registry under its name.
// Registering the same type twice is a no-op; a different type under a taken
// name fails with ErrConflictingRegistration.
// It holds the build mutex so a concurrent rebuild cannot drop the entry.
func Register(t *Type) error {
	if t == nil {
		return ErrNilType
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	return st.Load().reg.Register(t)
}

// Lookup returns the globally registered enum type with the given name.
func Lookup(name string) (*Type, bool) {
	e, ok := st.Load().reg.Lookup(name)
	if !ok {
		return nil, false
	}
	t, ok := e.(*Type)
	return t, ok
}

// Types returns the globally registered enum types sorted by name.
func Types() []*Type {
	entries := st.Load().reg.Entries()
	out := make([]*Type, 0, len(entries))
	for _, e := range entries {
		if t, ok := e.Enum.(*Type); ok {
			out = append(out, t)
		}
	}
	return out
}

// resolve runs the global resolver for c and key.
func resolve(c *Case, key apis.Key) (any, error) {
	s := st.Load()
	return s.res.Resolve(c, key, s.cfg)
}

// SetAll replaces configuration, registry, resolver and builder in one
// snapshot. Nil arguments keep (cfg, bld) or rebuild (reg, res) the current
// layer; a non-nil reg or res is pinned. The dispatch hooks are kept.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nreg, npreg := reg, reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
	}
	nres, npres := res, res != nil
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res)
	}

	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	next := old.clone()
	next.cfg, next.reg, next.res, next.bld = ncfg, nreg, nres, nbld
	next.preg, next.pres = npreg, npres
	next.dsp = dispatch.New(old.dsp.Hooks(), dispatch.WithConfig(ncfg))
	st.Store(next)
}

// Config returns the global enumx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global enumx configuration to cfg.
// It rebuilds the non-pinned registry and resolver using the new configuration.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new nreg and res based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res)
	}

	// Ensure non-nil nreg and res.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	next := old.clone()
	next.cfg, next.reg, next.res = cfg, nreg, nres
	next.dsp = dispatch.New(old.dsp.Hooks(), dispatch.WithConfig(cfg))
	st.Store(next)
}

// Registry returns the global enumx registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global registry to reg and pins it.
// It uses the global configuration to rebuild the non-pinned resolver.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := old.res
	if !old.pres {
		nres = old.bld.BuildResolver(old.cfg, reg, old.res)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	next := old.clone()
	next.reg, next.res, next.preg = reg, nres, true
	st.Store(next)
}

// Resolver returns the global enumx resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets the global resolver to res and pins it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	next.res, next.pres = res, true
	st.Store(next)
}

// Builder returns the global enumx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the non-pinned layers.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	next := old.clone()
	next.reg, next.res, next.bld = nreg, nres, b
	st.Store(next)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets configuration changes rebuild the registry again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	next.preg = false
	st.Store(next)
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets configuration changes rebuild the resolver again.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	next.pres = false
	st.Store(next)
}

// SetHooks installs the global dynamic dispatch hooks. The slot is
// write-once: any later call fails with ErrHooksAlreadySet.
func SetHooks(h dispatch.Hooks) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if old.hooked {
		return ErrHooksAlreadySet
	}
	next := old.clone()
	next.dsp = dispatch.New(h, dispatch.WithConfig(old.cfg))
	next.hooked = true
	st.Store(next)
	return nil
}

// Dispatcher returns the global dispatcher.
func Dispatcher() *dispatch.Dispatcher {
	return st.Load().dsp
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// dsp is the global dispatcher.
	dsp *dispatch.Dispatcher
	// hooked indicates whether the write-once hooks slot was used.
	hooked bool
	// preg indicates whether the reg is pinned.
	preg bool
	// pres indicates whether the res is pinned.
	pres bool
}

// clone returns a shallow copy for writers to modify before publishing.
func (s *state) clone() *state {
	c := *s
	return &c
}
