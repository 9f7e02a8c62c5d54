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
	gerrors "github.com/tochemey/extensible/errors"
)

// Func is a Callable bound to an execution context, ready to be called.
type Func func(args ...any) (any, error)

// Callable is the bindable form of an extension method.
//
// Bind must only inspect the context and return the function to call: it must not run the
// operation. A Callable that does not accept an instance returns errors.ErrStaticBinding when
// the context carries one; this is how the registry tells type-level extension methods apart.
type Callable interface {
	// Bind binds the Callable to the given execution context
	Bind(ctx *Context) (Func, error)
}

// InstanceFunc is a Callable that runs against the instance of the execution context.
// It binds to any context; on a type-level call the context simply has no instance.
type InstanceFunc func(ctx *Context, args ...any) (any, error)

// enforce compilation error
var _ Callable = InstanceFunc(nil)

// Bind binds the function to ctx
func (fn InstanceFunc) Bind(ctx *Context) (Func, error) {
	if fn == nil {
		return nil, gerrors.NewErrNotCallable(fn)
	}
	return func(args ...any) (any, error) {
		return fn(ctx, args...)
	}, nil
}

// StaticFunc is a Callable that operates at the type level only.
// It refuses to bind an execution context that carries an instance.
type StaticFunc func(ctx *Context, args ...any) (any, error)

// enforce compilation error
var _ Callable = StaticFunc(nil)

// Bind binds the function to ctx. It returns errors.ErrStaticBinding when ctx has an instance.
func (fn StaticFunc) Bind(ctx *Context) (Func, error) {
	if fn == nil {
		return nil, gerrors.NewErrNotCallable(fn)
	}
	if ctx.HasInstance() {
		return nil, gerrors.ErrStaticBinding
	}
	return func(args ...any) (any, error) {
		return fn(ctx, args...)
	}, nil
}

// Bound returns an instance-level Callable handing fn the instance of the execution context
// as a *T. The instance can be a *T or a type embedding T along its first embedded fields.
// Calling it without an instance, or with an unrelated one, fails with errors.ErrInvalidInstance.
func Bound[T any](fn func(self *T, args ...any) (any, error)) Callable {
	if fn == nil {
		return InstanceFunc(nil)
	}
	return InstanceFunc(func(ctx *Context, args ...any) (any, error) {
		self, err := As[T](ctx)
		if err != nil {
			return nil, err
		}
		return fn(self, args...)
	})
}
