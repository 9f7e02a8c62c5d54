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
	"strings"

	"github.com/tochemey/extensible/internal/xsync"
)

// Catalog records types so that they can be referenced by name
type Catalog interface {
	// Register records the type referenced by v
	Register(v any)
	// Deregister removes the type referenced by v
	Deregister(v any)
	// Exists returns true when the type referenced by v is recorded
	Exists(v any) bool
	// TypeOf returns the type recorded under the given name
	TypeOf(name string) (reflect.Type, bool)
	// Types returns a snapshot of the recorded types keyed by name
	Types() map[string]reflect.Type
}

type catalog struct {
	m *xsync.Map[string, reflect.Type]
}

var _ Catalog = (*catalog)(nil)

// GlobalCatalog is the process-wide catalog used when none is given
var GlobalCatalog = NewCatalog()

// NewCatalog creates an empty Catalog
func NewCatalog() Catalog {
	return &catalog{
		m: xsync.NewMap[string, reflect.Type](),
	}
}

// Register records the type referenced by v. Unnamed types are ignored.
func (x *catalog) Register(v any) {
	if rtype, ok := Of(v); ok {
		x.m.Set(key(Name(rtype)), rtype)
	}
}

// Deregister removes the type referenced by v
func (x *catalog) Deregister(v any) {
	if rtype, ok := Of(v); ok {
		x.m.Delete(key(Name(rtype)))
	}
}

// Exists returns true when the type referenced by v is recorded
func (x *catalog) Exists(v any) bool {
	rtype, ok := Of(v)
	if !ok {
		return false
	}
	_, ok = x.m.Get(key(Name(rtype)))
	return ok
}

// TypeOf returns the type recorded under the given name.
// Lookup is case-insensitive and ignores surrounding spaces.
func (x *catalog) TypeOf(name string) (reflect.Type, bool) {
	return x.m.Get(key(name))
}

// Types returns a snapshot of the recorded types keyed by name
func (x *catalog) Types() map[string]reflect.Type {
	out := make(map[string]reflect.Type, x.m.Len())
	x.m.Range(func(s string, r reflect.Type) {
		out[s] = r
	})
	return out
}

// key trims spaces and lowers the name
func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
