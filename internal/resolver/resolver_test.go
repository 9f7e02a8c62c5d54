// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package resolver

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/tochemey/extensible/errors"
	"github.com/tochemey/extensible/extension"
	"github.com/tochemey/extensible/internal/types"
)

type echo struct {
	prefix string
}

func (e *echo) Invoke() extension.Callable {
	return extension.InstanceFunc(func(_ *extension.Context, args ...any) (any, error) {
		return e.prefix + args[0].(string), nil
	})
}

type created struct {
	value string
}

func (c *created) Invoke() extension.Callable {
	return extension.StaticFunc(func(*extension.Context, ...any) (any, error) {
		return c.value, nil
	})
}

func (*created) Create() extension.Method {
	return &created{value: "created"}
}

type createsNothing struct{}

func (createsNothing) Invoke() extension.Callable { return nil }

func (createsNothing) Create() extension.Method { return nil }

type notAnExtension struct{}

func TestResolve(t *testing.T) {
	catalog := types.NewCatalog()
	catalog.Register((*echo)(nil))
	catalog.Register((*notAnExtension)(nil))
	resolver := New(catalog)
	require.Equal(t, catalog, resolver.Catalog())

	t.Run("With type references", func(t *testing.T) {
		for _, ref := range []any{(*echo)(nil), echo{}, reflect.TypeFor[echo](), "resolver.echo"} {
			method, err := resolver.Resolve(ref)
			require.NoError(t, err)
			assert.IsType(t, &echo{}, method)
			assert.Empty(t, method.(*echo).prefix)
		}
	})

	t.Run("With method instances", func(t *testing.T) {
		configured := &echo{prefix: "configured"}
		method, err := resolver.Resolve(configured)
		require.NoError(t, err)
		assert.Same(t, configured, method)

		wrapped := extension.FromCallable(extension.StaticFunc(func(*extension.Context, ...any) (any, error) { return 2, nil }))
		method, err = resolver.Resolve(wrapped)
		require.NoError(t, err)
		assert.Equal(t, wrapped, method)
		static, err := extension.IsStatic(method)
		require.NoError(t, err)
		assert.True(t, static)
	})

	t.Run("With fresh instances", func(t *testing.T) {
		first, err := resolver.Resolve((*echo)(nil))
		require.NoError(t, err)
		second, err := resolver.Resolve((*echo)(nil))
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("With creatable type", func(t *testing.T) {
		method, err := resolver.Resolve((*created)(nil))
		require.NoError(t, err)
		require.IsType(t, &created{}, method)
		assert.Equal(t, "created", method.(*created).value)

		_, err = resolver.Resolve(createsNothing{})
		require.ErrorIs(t, err, gerrors.ErrNotCallable)
	})

	t.Run("With callables", func(t *testing.T) {
		callable := extension.StaticFunc(func(*extension.Context, ...any) (any, error) { return 1, nil })
		method, err := resolver.Resolve(callable)
		require.NoError(t, err)
		assert.NotNil(t, method.Invoke())

		method, err = resolver.Resolve(func(*extension.Context, ...any) (any, error) { return 2, nil })
		require.NoError(t, err)
		assert.IsType(t, extension.InstanceFunc(nil), method.Invoke())
	})

	t.Run("With non extension types", func(t *testing.T) {
		for _, ref := range []any{(*notAnExtension)(nil), "resolver.notanextension", 42} {
			_, err := resolver.Resolve(ref)
			require.ErrorIs(t, err, gerrors.ErrNotAnExtensionUnit)
		}
	})

	t.Run("With unresolvable references", func(t *testing.T) {
		for _, ref := range []any{nil, "not callable", struct{}{}, reflect.TypeFor[[]string]()} {
			_, err := resolver.Resolve(ref)
			require.ErrorIs(t, err, gerrors.ErrNotCallable)
		}
	})

	t.Run("With the global catalog by default", func(t *testing.T) {
		assert.Equal(t, types.GlobalCatalog, New(nil).Catalog())
	})
}
