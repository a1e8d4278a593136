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
	"slices"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/ordered"
	"dirpx.dev/enumx/strategy"
	"dirpx.dev/enumx/utils/values"
)

// From returns the case with the backing value v, or with the name v for
// pure enums.
func (t *Type) From(v any) (*Case, error) {
	if t.IsPure() {
		name, _ := v.(string)
		if c, ok := t.byName[name]; ok {
			return c, nil
		}
		return nil, &HydrationError{Kind: ErrNoSuchName, Enum: t.name, Target: v}
	}
	return t.FromValue(v)
}

// TryFrom is like From but reports absence instead of failing.
func (t *Type) TryFrom(v any) (*Case, bool) {
	c, err := t.From(v)
	return c, err == nil
}

// FromName returns the case with the given name.
func (t *Type) FromName(name string) (*Case, error) {
	if c, ok := t.byName[name]; ok {
		return c, nil
	}
	return nil, &HydrationError{Kind: ErrNoSuchName, Enum: t.name, Target: name}
}

// TryFromName is like FromName but reports absence instead of failing.
func (t *Type) TryFromName(name string) (*Case, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// FromValue returns the case with the backing value v. Pure enums have no
// values and always fail.
func (t *Type) FromValue(v any) (*Case, error) {
	if t.IsBacked() {
		norm := cfgNormalize()
		for _, c := range t.cases {
			if values.Equal(c.value, v, norm) {
				return c, nil
			}
		}
	}
	return nil, &HydrationError{Kind: ErrNoSuchValue, Enum: t.name, Target: v}
}

// TryFromValue is like FromValue but reports absence instead of failing.
func (t *Type) TryFromValue(v any) (*Case, bool) {
	c, err := t.FromValue(v)
	return c, err == nil
}

// FromKey returns the cases whose resolved key equals target, or, when
// target is a func(any) bool, satisfies it. An empty result fails with
// ErrNoMatch; resolver errors propagate.
func (t *Type) FromKey(key any, target any) (Cases, error) {
	cs, ok, err := t.TryFromKey(key, target)
	if err != nil {
		return Cases{}, err
	}
	if !ok {
		return cs, &HydrationError{Kind: ErrNoMatch, Enum: t.name, Key: keyText(key), Target: target}
	}
	return cs, nil
}

// TryFromKey is like FromKey but reports no match with ok == false.
func (t *Type) TryFromKey(key any, target any) (Cases, bool, error) {
	k, err := t.key(key)
	if err != nil {
		return Cases{}, false, err
	}
	return t.scan(target, func(c *Case) (any, bool, error) {
		v, err := resolve(c, k)
		return v, err == nil, err
	})
}

// FromMetadata returns the cases whose metadata name equals target, true
// when target is omitted. Cases without that metadata do not match; a name
// no case or type declares fails with ErrInvalidKey.
func (t *Type) FromMetadata(name string, target ...any) (Cases, error) {
	cs, ok, err := t.TryFromMetadata(name, target...)
	if err != nil {
		return Cases{}, err
	}
	if !ok {
		return cs, &HydrationError{Kind: ErrNoMatch, Enum: t.name, Key: name, Target: metaTarget(target)}
	}
	return cs, nil
}

// TryFromMetadata is like FromMetadata but reports no match with ok == false.
func (t *Type) TryFromMetadata(name string, target ...any) (Cases, bool, error) {
	if !slices.Contains(MetadataNames(t), name) {
		return Cases{}, false, apis.NewKeyError(apis.NamedKey(name), t.name, nil)
	}
	cfg := Config()
	return t.scan(metaTarget(target), func(c *Case) (any, bool, error) {
		v, ok := strategy.LookupMetadata(c, name, cfg)
		return v, ok, nil
	})
}

// scan collects the cases whose lookup result matches target, keyed by position.
func (t *Type) scan(target any, lookup func(c *Case) (any, bool, error)) (Cases, bool, error) {
	pred, isPred := target.(func(any) bool)
	norm := cfgNormalize()
	m := ordered.New[any, *Case](len(t.cases))
	for _, c := range t.cases {
		v, found, err := lookup(c)
		if err != nil {
			return Cases{}, false, err
		}
		if !found {
			continue
		}
		if (isPred && pred(v)) || (!isPred && values.Equal(v, target, norm)) {
			m.Set(m.Len(), c)
		}
	}
	return Cases{m: m}, m.Len() > 0, nil
}

func metaTarget(target []any) any {
	if len(target) == 0 {
		return true
	}
	return target[0]
}

func keyText(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	if k, ok := key.(apis.Key); ok {
		return k.String()
	}
	return "callable"
}

