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
	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/extensible/internal/types"
	"github.com/tochemey/extensible/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(r *Registry)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Registry)

func (f OptionFunc) Apply(r *Registry) {
	f(r)
}

// WithLogger sets the registry logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	})
}

// WithMeterProvider sets the OpenTelemetry MeterProvider used to record
// extension method calls. The global MeterProvider is used by default.
func WithMeterProvider(meterProvider metric.MeterProvider) Option {
	return OptionFunc(func(r *Registry) {
		r.meterProvider = meterProvider
	})
}

// WithoutPanicRecovery disables the recovery of panics raised by extension methods.
// By default a panic is returned to the caller as an *errors.PanicError.
func WithoutPanicRecovery() Option {
	return OptionFunc(func(r *Registry) {
		r.recoverPanics = false
	})
}

// withCatalog sets the catalog extension method types are looked up by name from
func withCatalog(catalog types.Catalog) Option {
	return OptionFunc(func(r *Registry) {
		r.catalog = catalog
	})
}
