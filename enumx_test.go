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

package enumx_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/dispatch"
	"dirpx.dev/enumx/resolver"
	"dirpx.dev/enumx/strategy"
)

func TestDefine_RegistersGlobally(t *testing.T) {
	enumx.Registry().Reset()
	t.Cleanup(enumx.Registry().Reset)

	typ, err := enumx.Define("test.Registered", enumx.Pure, enumx.WithCase("A"))
	require.NoError(t, err)

	got, ok := enumx.Lookup("test.Registered")
	require.True(t, ok)
	assert.Same(t, typ, got)
	assert.Equal(t, []*enumx.Type{typ}, enumx.Types())

	// Registering the same type again is a no-op.
	require.NoError(t, enumx.Register(typ))

	_, err = enumx.Define("test.Registered", enumx.Pure, enumx.WithCase("B"))
	assert.ErrorIs(t, err, enumx.ErrConflictingRegistration)
	assert.ErrorIs(t, enumx.Register(nil), enumx.ErrNilType)

	assert.Panics(t, func() {
		enumx.MustDefine("test.Registered", enumx.Pure, enumx.WithCase("C"))
	})
}

func TestSetConfig_MetadataOrder(t *testing.T) {
	old := enumx.Config()
	t.Cleanup(func() { enumx.SetConfig(old) })

	typ, err := enumx.New("app.Layered", enumx.Pure,
		enumx.WithCase("A", enumx.WithMeta("tier", "old"), enumx.WithMeta("tier", "new")),
	)
	require.NoError(t, err)

	enumx.SetConfig(config.NewConfig(config.WithMetadataNewestFirst(false)))
	v, err := typ.Case("A").Get("tier")
	require.NoError(t, err)
	assert.Equal(t, "old", v)

	enumx.SetConfig(config.DefaultConfig())
	v, err = typ.Case("A").Get("tier")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestSetConfig_IntegerNormalization(t *testing.T) {
	old := enumx.Config()
	t.Cleanup(func() { enumx.SetConfig(old) })

	typ := numbers(t)
	enumx.SetConfig(config.NewConfig(config.WithNormalizeIntegers(false)))
	_, err := typ.FromValue(int64(2))
	assert.ErrorIs(t, err, enumx.ErrNoSuchValue)

	enumx.SetConfig(config.DefaultConfig())
	_, err = typ.FromValue(int64(2))
	assert.NoError(t, err)
}

func TestSetResolver_Pinning(t *testing.T) {
	t.Cleanup(func() {
		enumx.UnpinResolver()
		enumx.SetConfig(config.DefaultConfig())
	})

	// A resolver without the metadata strategy.
	bare := resolver.New(strategy.NewCallableStrategy(), strategy.NewPropertyStrategy())
	enumx.SetResolver(bare)
	require.True(t, enumx.IsResolverPinned())

	one := numbers(t).Case("one")
	_, err := one.Get("color")
	assert.ErrorIs(t, err, enumx.ErrInvalidKey)

	// Pinned layers survive reconfiguration.
	enumx.SetConfig(config.DefaultConfig())
	_, err = one.Get("color")
	assert.ErrorIs(t, err, enumx.ErrInvalidKey)

	enumx.UnpinResolver()
	enumx.SetConfig(config.DefaultConfig())
	v, err := one.Get("color")
	require.NoError(t, err)
	assert.Equal(t, "red", v)
}

func TestSetAll_KeepsHooksAndPins(t *testing.T) {
	t.Cleanup(func() {
		enumx.UnpinRegistry()
		enumx.UnpinResolver()
		enumx.SetConfig(config.DefaultConfig())
	})

	cfg := config.DefaultConfig()
	enumx.SetAll(&cfg, nil, nil, nil)
	assert.False(t, enumx.IsRegistryPinned())
	assert.False(t, enumx.IsResolverPinned())

	res := resolver.New(strategy.NewPropertyStrategy())
	enumx.SetAll(nil, nil, res, nil)
	assert.True(t, enumx.IsResolverPinned())
	assert.NotNil(t, enumx.Dispatcher())
}

func TestDispatch_Defaults(t *testing.T) {
	typ := numbers(t)

	v, err := typ.Call("two")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = typ.Call("four")
	assert.ErrorIs(t, err, enumx.ErrNoSuchName)

	v, err = typ.Case("one").Call("color")
	require.NoError(t, err)
	assert.Equal(t, "red", v)

	_, err = typ.Case("one").Call("isOdd")
	assert.ErrorIs(t, err, enumx.ErrNoMetadata)

	v, err = typ.Case("three").Invoke()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = suits(t).Case("Clubs").Invoke()
	require.NoError(t, err)
	assert.Equal(t, "Clubs", v)
}

func TestSetHooks_WriteOnce(t *testing.T) {
	fallback := dispatch.Default()
	hooks := dispatch.Hooks{
		OnStaticCall: func(e apis.Enum, name string, args []any) (any, error) {
			if name == "answer" {
				return 42, nil
			}
			return fallback.StaticCall(e, name, args...)
		},
	}

	err := enumx.SetHooks(hooks)
	if err != nil {
		// Installed by an earlier run in the same process.
		require.ErrorIs(t, err, enumx.ErrHooksAlreadySet)
	}
	assert.ErrorIs(t, enumx.SetHooks(dispatch.Hooks{}), enumx.ErrHooksAlreadySet)

	v, err := numbers(t).Call("answer")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = numbers(t).Call("one")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestGlobal_ConcurrentReadsDuringReconfiguration(t *testing.T) {
	t.Cleanup(func() { enumx.SetConfig(config.DefaultConfig()) })

	typ := numbers(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := typ.GroupBy("isOdd"); err != nil {
					t.Errorf("GroupBy: %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < 50; i++ {
		enumx.SetConfig(config.NewConfig(config.WithMetadataNewestFirst(i%2 == 0)))
	}
	wg.Wait()
}

func TestDefine_SurvivesConcurrentRebuilds(t *testing.T) {
	enumx.Registry().Reset()
	t.Cleanup(enumx.Registry().Reset)
	t.Cleanup(func() { enumx.SetConfig(config.DefaultConfig()) })

	const workers, per = 4, 50
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			enumx.SetConfig(config.NewConfig(config.WithNormalizeIntegers(i%2 == 0)))
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				if _, err := enumx.Define(fmt.Sprintf("test.Rebuild%d_%d", w, i), enumx.Pure, enumx.WithCase("A")); err != nil {
					t.Errorf("Define: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	<-done

	assert.Len(t, enumx.Types(), workers*per)
	for w := 0; w < workers; w++ {
		for i := 0; i < per; i++ {
			_, ok := enumx.Lookup(fmt.Sprintf("test.Rebuild%d_%d", w, i))
			assert.True(t, ok, "test.Rebuild%d_%d", w, i)
		}
	}
}
