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

package extension

import (
	"errors"
	"reflect"

	gerrors "github.com/tochemey/extensible/errors"
)

// placeholder is the instance IsStatic binds a Callable to.
// It has no relation to any host type.
type placeholder struct{}

// Descriptor is a read-only view of a registered extension method
type Descriptor struct {
	// Method is the extension method instance
	Method Method
	// Guarded is true when the extension method cannot be overwritten or removed
	Guarded bool
	// Static is true when the extension method operates at the type level
	Static bool
}

// Extension is an extension method registered on a host type.
//
// It wraps the Method with its guard flag and its type-level classification. An Extension
// is immutable once created and can be shared safely between goroutines.
type Extension struct {
	method  Method
	guarded bool
	static  bool
}

// New creates an Extension for the given Method.
//
// The Callable produced by method is classified once: when it refuses to bind an instance
// the Extension is type-level. Any other error returned during classification is returned
// unchanged and no Extension is created.
func New(method Method, guarded bool) (*Extension, error) {
	if method == nil {
		return nil, gerrors.NewErrNotCallable(method)
	}

	static, err := IsStatic(method)
	if err != nil {
		return nil, err
	}

	return &Extension{
		method:  method,
		guarded: guarded,
		static:  static,
	}, nil
}

// IsStatic reports whether the Callable produced by method operates at the type level.
//
// It binds the Callable to a context holding an instance unrelated to any host type without
// calling it. errors.ErrStaticBinding means the Callable does not accept an instance.
func IsStatic(method Method) (bool, error) {
	callable := method.Invoke()
	if isNil(callable) {
		return false, gerrors.NewErrNotCallable(method)
	}

	_, err := callable.Bind(NewContext(nil, new(placeholder)))
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, gerrors.ErrStaticBinding):
		return true, nil
	default:
		return false, err
	}
}

// Method returns the extension method instance
func (x *Extension) Method() Method {
	return x.method
}

// IsGuarded returns true when the extension method cannot be overwritten or removed
func (x *Extension) IsGuarded() bool {
	return x.guarded
}

// IsStatic returns true when the extension method operates at the type level
func (x *Extension) IsStatic() bool {
	return x.static
}

// Execute runs the extension method bound to an execution context scoped to the given type
// and holding caller. caller is dropped when the extension method is type-level.
// The result and the error of the Callable are returned as is.
func (x *Extension) Execute(scope reflect.Type, args []any, caller any) (any, error) {
	if x.static {
		caller = nil
	}

	callable := x.method.Invoke()
	if isNil(callable) {
		return nil, gerrors.NewErrNotCallable(x.method)
	}

	fn, err := callable.Bind(NewContext(scope, caller))
	if err != nil {
		return nil, err
	}
	return fn(args...)
}

// Descriptor returns the read-only view of the extension method
func (x *Extension) Descriptor() Descriptor {
	return Descriptor{
		Method:  x.method,
		Guarded: x.guarded,
		Static:  x.static,
	}
}

// isNil returns true for a nil Callable, including a nil function typed as a Callable
func isNil(callable Callable) bool {
	if callable == nil {
		return true
	}
	value := reflect.ValueOf(callable)
	switch value.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan:
		return value.IsNil()
	default:
		return false
	}
}
