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

package registry_test

import (
	"fmt"

	"github.com/tochemey/extensible/extension"
	"github.com/tochemey/extensible/registry"
)

type Temperature struct {
	celsius float64
}

// ToFahrenheit reads the unexported celsius field of the Temperature it is called on
type ToFahrenheit struct{}

func (ToFahrenheit) Invoke() extension.Callable {
	return extension.InstanceFunc(func(ctx *extension.Context, _ ...any) (any, error) {
		celsius, err := ctx.Field("celsius")
		if err != nil {
			return nil, err
		}
		return celsius.(float64)*9/5 + 32, nil
	})
}

// Freezing is a type-level extension method
type Freezing struct{}

func (Freezing) Invoke() extension.Callable {
	return extension.StaticFunc(func(*extension.Context, ...any) (any, error) {
		return &Temperature{}, nil
	})
}

func ExampleFor() {
	temperatures := registry.For[Temperature](registry.New())
	_ = temperatures.Register("fahrenheit", ToFahrenheit{})
	_ = temperatures.Register("freezing", Freezing{})

	fahrenheit, _ := temperatures.Call(&Temperature{celsius: 100}, "fahrenheit")
	fmt.Println(fahrenheit)

	freezing, _ := temperatures.CallStatic("freezing")
	fahrenheit, _ = temperatures.Call(freezing.(*Temperature), "fahrenheit")
	fmt.Println(fahrenheit)

	fmt.Println(temperatures.All()["freezing"].Static)
	// Output:
	// 212
	// 32
	// true
}
