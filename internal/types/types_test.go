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

package types

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	value int
}

func (b *base) DefinedMethod() int { return b.value }

type child struct {
	base
	name string
}

type grandChild struct {
	*child
}

type loopA struct {
	*loopB
}

type loopB struct {
	*loopA
}

type standalone struct {
	count int
}

func TestOf(t *testing.T) {
	t.Run("With value, pointer, nil pointer and reflect.Type", func(t *testing.T) {
		expected := reflect.TypeOf(base{})
		for _, v := range []any{base{}, &base{}, (*base)(nil), expected, reflect.TypeOf(&base{})} {
			rtype, ok := Of(v)
			require.True(t, ok)
			assert.Equal(t, expected, rtype)
		}
	})

	t.Run("With nil and unnamed types", func(t *testing.T) {
		for _, v := range []any{nil, struct{}{}, []int{}, reflect.TypeOf(map[string]int{})} {
			_, ok := Of(v)
			assert.False(t, ok)
		}
	})
}

func TestName(t *testing.T) {
	assert.Equal(t, "types.base", Name(reflect.TypeOf(base{})))
	assert.Equal(t, "<nil>", Name(nil))
}

func TestLineage(t *testing.T) {
	baseType := reflect.TypeOf(base{})
	childType := reflect.TypeOf(child{})
	grandChildType := reflect.TypeOf(grandChild{})

	t.Run("With embedded struct chain", func(t *testing.T) {
		assert.Equal(t, childType, Parent(grandChildType))
		assert.Equal(t, baseType, Parent(childType))
		assert.Nil(t, Parent(baseType))
		assert.Equal(t, []reflect.Type{grandChildType, childType, baseType}, Lineage(grandChildType))
	})

	t.Run("With standalone type", func(t *testing.T) {
		rtype := reflect.TypeOf(standalone{})
		assert.Equal(t, []reflect.Type{rtype}, Lineage(rtype))
	})

	t.Run("With pointer embedding cycle", func(t *testing.T) {
		a := reflect.TypeOf(loopA{})
		b := reflect.TypeOf(loopB{})
		assert.Equal(t, []reflect.Type{a, b}, Lineage(a))
	})

	t.Run("With non struct type", func(t *testing.T) {
		assert.Nil(t, Parent(reflect.TypeOf(0)))
		assert.Empty(t, Lineage(nil))
	})
}

func TestHasMethod(t *testing.T) {
	assert.True(t, HasMethod(reflect.TypeOf(base{}), "DefinedMethod"))
	assert.True(t, HasMethod(reflect.TypeOf(base{}), "definedMethod"))
	// promoted from the embedded ancestor
	assert.True(t, HasMethod(reflect.TypeOf(grandChild{}), "definedmethod"))
	assert.False(t, HasMethod(reflect.TypeOf(standalone{}), "definedMethod"))
	assert.False(t, HasMethod(nil, "definedMethod"))

	var stringer interface{ String() string }
	assert.True(t, HasMethod(reflect.TypeOf(&stringer).Elem(), "string"))
}

func TestCatalog(t *testing.T) {
	catalog := NewCatalog()
	require.Empty(t, catalog.Types())

	catalog.Register((*base)(nil))
	catalog.Register(struct{}{})
	assert.True(t, catalog.Exists(base{}))
	assert.False(t, catalog.Exists(child{}))
	assert.Len(t, catalog.Types(), 1)

	rtype, ok := catalog.TypeOf("  Types.Base ")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(base{}), rtype)

	catalog.Deregister(&base{})
	assert.False(t, catalog.Exists(base{}))
	_, ok = catalog.TypeOf("types.base")
	assert.False(t, ok)
}

func TestParentField(t *testing.T) {
	field, ok := ParentField(reflect.TypeOf(grandChild{}))
	require.True(t, ok)
	assert.Equal(t, "child", field.Name)
	assert.Equal(t, reflect.Pointer, field.Type.Kind())

	field, ok = ParentField(reflect.TypeOf(child{}))
	require.True(t, ok)
	assert.Equal(t, []int{0}, field.Index)

	_, ok = ParentField(reflect.TypeOf(standalone{}))
	assert.False(t, ok)
}
