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

	gerrors "github.com/tochemey/extensible/errors"
	"github.com/tochemey/extensible/extension"
	"github.com/tochemey/extensible/internal/types"
)

var methodType = reflect.TypeFor[extension.Method]()

// Resolver turns an extension method reference into a Method instance
type Resolver struct {
	catalog types.Catalog
}

// New creates a Resolver looking up type names in the given catalog
func New(catalog types.Catalog) *Resolver {
	if catalog == nil {
		catalog = types.GlobalCatalog
	}
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog type names are resolved from
func (r *Resolver) Catalog() types.Catalog {
	return r.catalog
}

// Resolve returns a Method for the given reference.
//
// ref can be:
//   - a Method instance, returned as is unless it is a nil pointer;
//   - a reflect.Type, a typed nil pointer or a value referencing an extension method type;
//   - the name of an extension method type recorded in the catalog;
//   - an extension.Callable, or a plain function with the signature of extension.InstanceFunc.
//
// A referenced type must implement extension.Method. When it also implements
// extension.Creatable, Create is called on a zero instance and its result is returned.
// Otherwise the zero instance itself is returned.
// Nothing is cached: every type reference builds a new instance.
func (r *Resolver) Resolve(ref any) (extension.Method, error) {
	switch x := ref.(type) {
	case nil:
		return nil, gerrors.NewErrNotCallable(ref)
	case string:
		rtype, ok := r.catalog.TypeOf(x)
		if !ok {
			return nil, gerrors.NewErrNotCallable(x)
		}
		return r.construct(rtype)
	case reflect.Type:
		return r.fromType(x)
	case func(*extension.Context, ...any) (any, error):
		return extension.FromCallable(extension.InstanceFunc(x)), nil
	case extension.Method:
		if value := reflect.ValueOf(x); value.Kind() == reflect.Pointer && value.IsNil() {
			return r.fromType(value.Type())
		}
		return x, nil
	case extension.Callable:
		return extension.FromCallable(x), nil
	default:
		return r.fromType(reflect.TypeOf(x))
	}
}

func (r *Resolver) fromType(rtype reflect.Type) (extension.Method, error) {
	named, ok := types.Of(rtype)
	if !ok {
		return nil, gerrors.NewErrNotCallable(rtype)
	}
	return r.construct(named)
}

// construct builds a fresh instance of the named, non-pointer type rtype
func (r *Resolver) construct(rtype reflect.Type) (extension.Method, error) {
	ptr := reflect.PointerTo(rtype)
	if !ptr.Implements(methodType) {
		return nil, gerrors.NewErrNotAnExtensionUnit(types.Name(rtype))
	}

	instance := reflect.New(rtype).Interface()
	if creatable, ok := instance.(extension.Creatable); ok {
		method := creatable.Create()
		if method == nil {
			return nil, gerrors.NewErrNotCallable(types.Name(rtype))
		}
		return method, nil
	}
	return instance.(extension.Method), nil
}
