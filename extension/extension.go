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

// Method defines the contract every extension method type must implement.
//
// An extension method type does not perform the operation itself: it is a zero-argument
// producer of the Callable that does. The registry instantiates the type, asks it for its
// Callable and binds that Callable to the execution context of every call.
//
// Example:
//
//	type Double struct{}
//
//	func (Double) Invoke() extension.Callable {
//		return extension.InstanceFunc(func(ctx *extension.Context, args ...any) (any, error) {
//			x, err := extension.Arg[int](args, 0)
//			if err != nil {
//				return nil, err
//			}
//			return x * 2, nil
//		})
//	}
type Method interface {
	// Invoke returns the Callable implementing the extension method.
	//
	// Invoke must not execute the operation. It is called once when the extension method is
	// registered, to classify the Callable, and once per call.
	Invoke() Callable
}

// Creatable is implemented by extension method types that construct themselves.
//
// When a type implements Creatable the registry calls Create on a zero instance of the type
// and registers the returned Method instead of the zero instance.
type Creatable interface {
	// Create returns a ready to use Method
	Create() Method
}

// FromCallable wraps a Callable into a Method whose Invoke always returns it.
func FromCallable(callable Callable) Method {
	return callableMethod{callable: callable}
}

type callableMethod struct {
	callable Callable
}

var _ Method = callableMethod{}

func (x callableMethod) Invoke() Callable {
	return x.callable
}
