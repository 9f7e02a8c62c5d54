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

package registry

import (
	"reflect"

	"github.com/tochemey/extensible/extension"
)

// Host exposes the extension methods of the host type T.
//
// Host types route the calls they do not implement natively through Call and CallStatic:
//
//	type Simple struct {
//		private int
//	}
//
//	var simpleExtensions = registry.For[Simple](nil)
//
//	func (s *Simple) Extended(name string, args ...any) (any, error) {
//		return simpleExtensions.Call(s, name, args...)
//	}
type Host[T any] struct {
	registry *Registry
	hostType reflect.Type
}

// For returns the Host of T in the given registry. The Global registry is used when r is nil.
func For[T any](r *Registry) *Host[T] {
	if r == nil {
		r = Global
	}
	return &Host[T]{
		registry: r,
		hostType: reflect.TypeFor[T](),
	}
}

// Register registers an extension method on T
func (h *Host[T]) Register(name string, ref any) error {
	return h.registry.Register(h.hostType, name, ref, false)
}

// RegisterGuarded registers a guarded extension method on T
func (h *Host[T]) RegisterGuarded(name string, ref any) error {
	return h.registry.Register(h.hostType, name, ref, true)
}

// Unregister removes an extension method registered on T
func (h *Host[T]) Unregister(name string) error {
	return h.registry.Unregister(h.hostType, name)
}

// Has returns true when name resolves to an extension method of T or of one of its ancestors
func (h *Host[T]) Has(name string) bool {
	return h.registry.Has(h.hostType, name, false)
}

// HasOwn returns true when name is registered on T itself
func (h *Host[T]) HasOwn(name string) bool {
	return h.registry.Has(h.hostType, name, true)
}

// All returns the extension methods of T, those inherited from its ancestors included
func (h *Host[T]) All() map[string]extension.Descriptor {
	return h.registry.All(h.hostType, false)
}

// AllOwn returns the extension methods registered on T itself
func (h *Host[T]) AllOwn() map[string]extension.Descriptor {
	return h.registry.All(h.hostType, true)
}

// Call calls an extension method on self
func (h *Host[T]) Call(self *T, name string, args ...any) (any, error) {
	return h.registry.Call(self, name, args...)
}

// CallStatic calls an extension method on T without instance
func (h *Host[T]) CallStatic(name string, args ...any) (any, error) {
	return h.registry.CallStatic(h.hostType, name, args...)
}
