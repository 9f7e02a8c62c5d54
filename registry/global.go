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
	"github.com/tochemey/extensible/extension"
	"github.com/tochemey/extensible/internal/types"
)

// Global is the process-wide Registry used by the package level functions
var Global = New(withCatalog(types.GlobalCatalog))

// RegisterType records an extension method type in the Global registry so that it can be registered by name
func RegisterType(v any) {
	Global.RegisterType(v)
}

// Register registers an extension method on the host type in the Global registry
func Register(host any, name string, ref any, guarded bool) error {
	return Global.Register(host, name, ref, guarded)
}

// Unregister removes an extension method of the host type from the Global registry
func Unregister(host any, name string) error {
	return Global.Unregister(host, name)
}

// Has checks whether name resolves to an extension method of the host type in the Global registry
func Has(host any, name string, ownOnly bool) bool {
	return Global.Has(host, name, ownOnly)
}

// All returns the extension methods of the host type in the Global registry
func All(host any, ownOnly bool) map[string]extension.Descriptor {
	return Global.All(host, ownOnly)
}

// Call calls an extension method on instance using the Global registry
func Call(instance any, name string, args ...any) (any, error) {
	return Global.Call(instance, name, args...)
}

// CallStatic calls a type-level extension method on the host type using the Global registry
func CallStatic(host any, name string, args ...any) (any, error) {
	return Global.CallStatic(host, name, args...)
}
