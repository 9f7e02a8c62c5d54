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

	goset "github.com/deckarep/golang-set/v2"
)

// Of returns the named, non-pointer type referenced by v.
// v can be a reflect.Type, a typed (possibly nil) pointer or a value.
// The second return value is false when v is nil or references an unnamed type.
func Of(v any) (reflect.Type, bool) {
	var rtype reflect.Type
	switch _type := v.(type) {
	case nil:
		return nil, false
	case reflect.Type:
		rtype = _type
	default:
		rtype = reflect.TypeOf(v)
	}

	for rtype != nil && rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if rtype == nil || rtype.Name() == "" {
		return nil, false
	}
	return rtype, true
}

// Name returns the fully qualified name of a type, e.g. "registry.Simple"
func Name(rtype reflect.Type) string {
	if rtype == nil {
		return "<nil>"
	}
	return rtype.String()
}

// Parent returns the immediate ancestor of a struct type: the type of its first
// embedded struct field, by value or by pointer. It returns nil when there is none.
func Parent(rtype reflect.Type) reflect.Type {
	field, ok := ParentField(rtype)
	if !ok {
		return nil
	}
	if field.Type.Kind() == reflect.Pointer {
		return field.Type.Elem()
	}
	return field.Type
}

// ParentField returns the first embedded field of a struct type whose type, once
// dereferenced, is a named struct.
func ParentField(rtype reflect.Type) (reflect.StructField, bool) {
	if rtype == nil || rtype.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}

	for i := range rtype.NumField() {
		field := rtype.Field(i)
		if !field.Anonymous {
			continue
		}

		ftype := field.Type
		if ftype.Kind() == reflect.Pointer {
			ftype = ftype.Elem()
		}

		if ftype.Kind() == reflect.Struct && ftype.Name() != "" {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

// Lineage returns the lookup chain of a type: the type itself followed by its
// ancestors, most-derived first. Pointer embedding can loop back to a type
// already visited; the walk stops there.
func Lineage(rtype reflect.Type) []reflect.Type {
	visited := goset.NewThreadUnsafeSet[reflect.Type]()
	lineage := make([]reflect.Type, 0, 4)
	for current := rtype; current != nil; current = Parent(current) {
		if !visited.Add(current) {
			break
		}
		lineage = append(lineage, current)
	}
	return lineage
}

// HasMethod reports whether the method set of *rtype, which includes methods
// promoted from embedded types, declares a method named like name ignoring case.
func HasMethod(rtype reflect.Type, name string) bool {
	if rtype == nil {
		return false
	}

	mtype := rtype
	if rtype.Kind() != reflect.Interface {
		mtype = reflect.PointerTo(rtype)
	}

	for i := range mtype.NumMethod() {
		if strings.EqualFold(mtype.Method(i).Name, name) {
			return true
		}
	}
	return false
}
