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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMethodAlreadyDefined is returned when an extension name collides with a method
	// natively declared on the host type or one of its ancestors.
	ErrMethodAlreadyDefined = errors.New("method is already defined on the type")

	// ErrNotAnExtensionUnit is returned when the referenced type does not implement the extension.Method interface.
	ErrNotAnExtensionUnit = errors.New("type does not implement the extension method interface")

	// ErrNotCallable is returned when the extension reference cannot be resolved into an invocable callable.
	ErrNotCallable = errors.New("extension method is not callable")

	// ErrGuarded is returned when overwriting or removing a guarded extension method.
	ErrGuarded = errors.New("extension method is guarded")

	// ErrNotFound is returned when no extension method resolves for a name along the lookup chain.
	ErrNotFound = errors.New("extension method not found")

	// ErrStaticBinding is returned by a type-level callable asked to bind an instance.
	// It is the signal consumed by the static classification of an extension method.
	ErrStaticBinding = errors.New("cannot bind an instance to a static callable")

	// ErrInvalidName is returned when an extension method name is not a valid identifier.
	ErrInvalidName = errors.New("invalid extension method name, must be an identifier (i.e. [a-zA-Z_] followed by [a-zA-Z0-9_])")

	// ErrInvalidHostType is returned when the host type reference is nil or is not a named type.
	ErrInvalidHostType = errors.New("invalid host type")

	// ErrInvalidInstance is returned when the bound instance is not of the type a callable expects.
	ErrInvalidInstance = errors.New("invalid instance")

	// ErrInvalidArgument is returned when an extension method argument is missing or of the wrong type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFieldNotFound is returned when the bound instance has no field with the requested name.
	ErrFieldNotFound = errors.New("field not found")

	// ErrNoInstance is returned when instance state is accessed from a type-level execution context.
	ErrNoInstance = errors.New("execution context has no instance")
)

// NewErrMethodAlreadyDefined formats an ErrMethodAlreadyDefined for the given type and name
func NewErrMethodAlreadyDefined(typeName, name string) error {
	return fmt.Errorf("%w: %s.%s", ErrMethodAlreadyDefined, typeName, name)
}

// NewErrNotAnExtensionUnit formats an ErrNotAnExtensionUnit for the given type
func NewErrNotAnExtensionUnit(typeName string) error {
	return fmt.Errorf("%w: %s", ErrNotAnExtensionUnit, typeName)
}

// NewErrNotCallable formats an ErrNotCallable for the given reference
func NewErrNotCallable(ref any) error {
	return fmt.Errorf("%w: %v", ErrNotCallable, ref)
}

// NewErrGuarded formats an ErrGuarded for the given type and name
func NewErrGuarded(typeName, name string) error {
	return fmt.Errorf("%w: %s.%s", ErrGuarded, typeName, name)
}

// NewErrNotFound formats an ErrNotFound for the given type and name
func NewErrNotFound(typeName, name string) error {
	return fmt.Errorf("%w: %s.%s", ErrNotFound, typeName, name)
}

// NewErrFieldNotFound formats an ErrFieldNotFound for the given type and field
func NewErrFieldNotFound(typeName, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrFieldNotFound, typeName, field)
}

// NewErrInvalidArgument wraps the reason an argument was rejected
func NewErrInvalidArgument(err error) error {
	return errors.Join(ErrInvalidArgument, err)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
