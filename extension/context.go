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
	"fmt"
	"reflect"
	"unsafe"

	gerrors "github.com/tochemey/extensible/errors"
	"github.com/tochemey/extensible/internal/types"
)

// Accessor is implemented by host types that expose their state to extension methods
// explicitly. When the instance of an execution context implements Accessor, field
// access goes through it instead of reflection.
type Accessor interface {
	// GetField returns the value of the named field and whether the field exists
	GetField(name string) (any, bool)
	// SetField sets the value of the named field and returns false when the field does not exist
	SetField(name string, value any) bool
}

// Context is the execution context an extension method is bound to.
//
// It is created for every call and gives the Callable access to the instance the method is
// called on, including its unexported state, and to the scope type the call was resolved from.
// On a type-level call the context has no instance.
type Context struct {
	instance any
	scope    reflect.Type
}

// NewContext creates an execution context for the given scope type and instance.
// instance can be nil for a type-level call.
func NewContext(scope reflect.Type, instance any) *Context {
	return &Context{
		instance: instance,
		scope:    scope,
	}
}

// Instance returns the instance the extension method is called on, or nil on a type-level call
func (x *Context) Instance() any {
	return x.instance
}

// HasInstance reports whether the context carries an instance
func (x *Context) HasInstance() bool {
	return x.instance != nil
}

// Scope returns the host type the call was resolved from
func (x *Context) Scope() reflect.Type {
	return x.scope
}

// ScopeName returns the fully qualified name of the scope type
func (x *Context) ScopeName() string {
	return types.Name(x.scope)
}

// Field returns the value of the named field of the instance.
// Unexported fields and fields promoted from embedded types are visible.
func (x *Context) Field(name string) (any, error) {
	if !x.HasInstance() {
		return nil, gerrors.ErrNoInstance
	}

	if accessor, ok := x.instance.(Accessor); ok {
		value, ok := accessor.GetField(name)
		if !ok {
			return nil, gerrors.NewErrFieldNotFound(x.instanceName(), name)
		}
		return value, nil
	}

	field, err := x.field(name, false)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// SetField sets the value of the named field of the instance.
// The instance must be a pointer for the change to be visible to the caller.
func (x *Context) SetField(name string, value any) error {
	if !x.HasInstance() {
		return gerrors.ErrNoInstance
	}

	if accessor, ok := x.instance.(Accessor); ok {
		if !accessor.SetField(name, value) {
			return gerrors.NewErrFieldNotFound(x.instanceName(), name)
		}
		return nil
	}

	field, err := x.field(name, true)
	if err != nil {
		return err
	}

	if value == nil {
		field.SetZero()
		return nil
	}

	rvalue := reflect.ValueOf(value)
	switch {
	case rvalue.Type().AssignableTo(field.Type()):
		field.Set(rvalue)
	case rvalue.Type().ConvertibleTo(field.Type()) && rvalue.Kind() == field.Kind():
		field.Set(rvalue.Convert(field.Type()))
	default:
		return gerrors.NewErrInvalidArgument(fmt.Errorf("cannot assign %T to field %s of type %s", value, name, field.Type()))
	}
	return nil
}

// field resolves the named field on the instance. The returned value bypasses the
// exported-field restriction of the reflect package.
func (x *Context) field(name string, settable bool) (reflect.Value, error) {
	value := reflect.ValueOf(x.instance)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, gerrors.ErrNoInstance
		}
		value = value.Elem()
	} else if settable {
		return reflect.Value{}, fmt.Errorf("%w: %T is not a pointer", gerrors.ErrInvalidInstance, x.instance)
	}

	if value.Kind() != reflect.Struct {
		return reflect.Value{}, gerrors.NewErrFieldNotFound(x.instanceName(), name)
	}

	if !value.CanAddr() {
		// a struct held by value: work on an addressable copy
		copied := reflect.New(value.Type()).Elem()
		copied.Set(value)
		value = copied
	}

	structField, ok := value.Type().FieldByName(name)
	if !ok {
		return reflect.Value{}, gerrors.NewErrFieldNotFound(x.instanceName(), name)
	}

	field, err := value.FieldByIndexErr(structField.Index)
	if err != nil {
		// promoted through a nil embedded pointer
		return reflect.Value{}, gerrors.NewErrFieldNotFound(x.instanceName(), name)
	}

	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem(), nil
}

func (x *Context) instanceName() string {
	rtype, ok := types.Of(x.instance)
	if !ok {
		return fmt.Sprintf("%T", x.instance)
	}
	return types.Name(rtype)
}

// As returns the instance of the execution context as a *T.
//
// The instance can be a *T or a pointer to a type embedding T along its chain of first
// embedded fields, in which case the embedded T is returned.
func As[T any](ctx *Context) (*T, error) {
	if ctx == nil || !ctx.HasInstance() {
		return nil, gerrors.ErrNoInstance
	}

	if self, ok := ctx.instance.(*T); ok {
		if self == nil {
			return nil, gerrors.ErrNoInstance
		}
		return self, nil
	}

	target := reflect.TypeFor[T]()
	value := reflect.ValueOf(ctx.instance)
	for value.Kind() == reflect.Pointer && !value.IsNil() {
		value = value.Elem()
		if value.Type() == target {
			return (*T)(value.Addr().UnsafePointer()), nil
		}

		field, ok := types.ParentField(value.Type())
		if !ok {
			break
		}
		value = value.FieldByIndex(field.Index)
		if value.Kind() != reflect.Pointer {
			value = value.Addr()
		}
	}

	return nil, fmt.Errorf("%w: %T is not a %s", gerrors.ErrInvalidInstance, ctx.instance, types.Name(target))
}

// Arg returns the argument at index as a T.
// It fails with errors.ErrInvalidArgument when the argument is missing or of another type.
func Arg[T any](args []any, index int) (T, error) {
	var zero T
	if index < 0 || index >= len(args) {
		return zero, gerrors.NewErrInvalidArgument(fmt.Errorf("missing argument at position %d", index))
	}

	value, ok := args[index].(T)
	if !ok {
		return zero, gerrors.NewErrInvalidArgument(fmt.Errorf("argument at position %d is %T, expected %s", index, args[index], reflect.TypeFor[T]()))
	}
	return value, nil
}
