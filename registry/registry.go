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
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"

	gerrors "github.com/tochemey/extensible/errors"
	"github.com/tochemey/extensible/extension"
	"github.com/tochemey/extensible/internal/metric"
	"github.com/tochemey/extensible/internal/resolver"
	"github.com/tochemey/extensible/internal/types"
	"github.com/tochemey/extensible/internal/validation"
	"github.com/tochemey/extensible/internal/xsync"
	"github.com/tochemey/extensible/log"
)

// Registry maps host types to their extension methods.
//
// Every host type owns its own set of extension methods. The extension methods of an
// ancestor, the type of the first embedded struct field, are visible through its
// descendants unless a descendant registers the same name. A Registry is safe for
// concurrent use: registration and removal are atomic with respect to lookups and calls.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]map[string]*extension.Extension

	lineages *xsync.Map[reflect.Type, []reflect.Type]
	catalog  types.Catalog
	resolver *resolver.Resolver

	logger        log.Logger
	meterProvider otelmetric.MeterProvider
	metrics       *metric.ExtensionMetric
	recoverPanics bool

	registeredCount *atomic.Int64
	dispatchCount   *atomic.Int64
	failureCount    *atomic.Int64
}

// New creates an empty Registry
func New(opts ...Option) *Registry {
	r := &Registry{
		entries:         make(map[reflect.Type]map[string]*extension.Extension),
		lineages:        xsync.NewMap[reflect.Type, []reflect.Type](),
		logger:          log.DiscardLogger,
		recoverPanics:   true,
		registeredCount: atomic.NewInt64(0),
		dispatchCount:   atomic.NewInt64(0),
		failureCount:    atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt.Apply(r)
	}

	if r.catalog == nil {
		r.catalog = types.NewCatalog()
	}
	r.resolver = resolver.New(r.catalog)

	if err := r.registerMetrics(); err != nil {
		r.logger.Warnf("extension metrics are disabled: %v", err)
		r.metrics = nil
	}
	return r
}

// RegisterType records an extension method type so that it can be registered by name.
// The name is the fully qualified type name, e.g. "mypkg.Double", matched case-insensitively.
func (r *Registry) RegisterType(v any) {
	r.catalog.Register(v)
}

// DeregisterType removes an extension method type recorded with RegisterType
func (r *Registry) DeregisterType(v any) {
	r.catalog.Deregister(v)
}

// Register registers the extension method referenced by ref under name on the host type.
//
// host references the host type: a reflect.Type, a typed (possibly nil) pointer or a value.
// ref references the extension method type: a reflect.Type, a typed (possibly nil)
// pointer, a value or a name recorded with RegisterType. An extension.Callable, or a plain
// function with the signature of extension.InstanceFunc, is accepted as well. A guarded
// extension method cannot be overwritten or removed from host afterwards; descendants of
// host can still register the same name.
//
// Register fails when name collides with a method declared on host or promoted from one of
// its embedded types, when ref cannot be resolved, or when host already has a guarded
// extension method with that name. A failed Register leaves the registry unchanged.
func (r *Registry) Register(host any, name string, ref any, guarded bool) error {
	if err := validation.NewNameValidator(name).Validate(); err != nil {
		return err
	}

	hostType, err := hostTypeOf(host)
	if err != nil {
		return err
	}

	typeName := types.Name(hostType)
	if types.HasMethod(hostType, name) {
		return gerrors.NewErrMethodAlreadyDefined(typeName, name)
	}

	method, err := r.resolver.Resolve(ref)
	if err != nil {
		return err
	}

	ext, err := extension.New(method, guarded)
	if err != nil {
		return err
	}

	r.mu.Lock()
	own, ok := r.entries[hostType]
	if !ok {
		own = make(map[string]*extension.Extension)
		r.entries[hostType] = own
	}

	current, exists := own[name]
	if exists && current.IsGuarded() {
		r.mu.Unlock()
		r.logger.Warnf("cannot overwrite guarded extension method %s.%s", typeName, name)
		return gerrors.NewErrGuarded(typeName, name)
	}

	own[name] = ext
	if !exists {
		r.registeredCount.Inc()
	}
	r.mu.Unlock()

	r.logger.Debugf("extension method %s.%s registered (guarded=%t, static=%t)", typeName, name, guarded, ext.IsStatic())
	return nil
}

// RegisterGuarded registers a guarded extension method. See Register.
func (r *Registry) RegisterGuarded(host any, name string, ref any) error {
	return r.Register(host, name, ref, true)
}

// Unregister removes the extension method registered under name on the host type itself.
// Removing a name registered only on an ancestor, or not registered at all, is a no-op.
// It fails with errors.ErrGuarded when the extension method is guarded.
func (r *Registry) Unregister(host any, name string) error {
	hostType, err := hostTypeOf(host)
	if err != nil {
		return err
	}

	typeName := types.Name(hostType)

	r.mu.Lock()
	own := r.entries[hostType]
	current, ok := own[name]
	if !ok {
		r.mu.Unlock()
		return nil
	}

	if current.IsGuarded() {
		r.mu.Unlock()
		r.logger.Warnf("cannot remove guarded extension method %s.%s", typeName, name)
		return gerrors.NewErrGuarded(typeName, name)
	}

	delete(own, name)
	if len(own) == 0 {
		delete(r.entries, hostType)
	}
	r.registeredCount.Dec()
	r.mu.Unlock()

	r.logger.Debugf("extension method %s.%s unregistered", typeName, name)
	return nil
}

// Has returns true when name resolves to an extension method for the host type.
// When ownOnly is true the extension methods of the ancestors are not considered.
func (r *Registry) Has(host any, name string, ownOnly bool) bool {
	hostType, err := hostTypeOf(host)
	if err != nil {
		return false
	}

	if ownOnly {
		r.mu.RLock()
		_, ok := r.entries[hostType][name]
		r.mu.RUnlock()
		return ok
	}

	_, ok := r.lookup(hostType, name)
	return ok
}

// All returns the extension methods of the host type keyed by name.
// The extension methods of the ancestors are included unless ownOnly is true; on a name
// collision the extension method of the most derived type wins.
func (r *Registry) All(host any, ownOnly bool) map[string]extension.Descriptor {
	hostType, err := hostTypeOf(host)
	if err != nil {
		return map[string]extension.Descriptor{}
	}

	lineage := []reflect.Type{hostType}
	if !ownOnly {
		lineage = r.lineage(hostType)
	}

	out := make(map[string]extension.Descriptor)
	r.mu.RLock()
	defer r.mu.RUnlock()
	// walk from the root so that descendants overwrite their ancestors
	for i := len(lineage) - 1; i >= 0; i-- {
		for name, ext := range r.entries[lineage[i]] {
			out[name] = ext.Descriptor()
		}
	}
	return out
}

// Lookup returns the extension method name resolves to for the host type, walking from
// the host type to its furthest ancestor. It fails with errors.ErrNotFound when none is found.
func (r *Registry) Lookup(host any, name string) (*extension.Extension, error) {
	hostType, err := hostTypeOf(host)
	if err != nil {
		return nil, err
	}

	ext, ok := r.lookup(hostType, name)
	if !ok {
		return nil, gerrors.NewErrNotFound(types.Name(hostType), name)
	}
	return ext, nil
}

// Call calls the extension method registered under name on the type of instance.
//
// The extension method is bound to instance, unless it is type-level in which case it
// runs without instance. The result and the error of the extension method are returned
// as is. A panic raised by the extension method is returned as an *errors.PanicError.
func (r *Registry) Call(instance any, name string, args ...any) (any, error) {
	hostType, err := instanceTypeOf(instance)
	if err != nil {
		return nil, err
	}
	return r.dispatch(hostType, name, args, instance)
}

// CallStatic calls the extension method registered under name on the host type without
// instance. An instance-level extension method called this way sees an execution context
// without instance.
func (r *Registry) CallStatic(host any, name string, args ...any) (any, error) {
	hostType, err := hostTypeOf(host)
	if err != nil {
		return nil, err
	}
	return r.dispatch(hostType, name, args, nil)
}

// Len returns the number of extension methods registered across all host types
func (r *Registry) Len() int {
	return int(r.registeredCount.Load())
}

// Reset removes every extension method, guarded ones included
func (r *Registry) Reset() {
	r.mu.Lock()
	clear(r.entries)
	r.registeredCount.Store(0)
	r.mu.Unlock()
}

// lookup walks the lineage of hostType and returns the first extension method found
func (r *Registry) lookup(hostType reflect.Type, name string) (*extension.Extension, bool) {
	lineage := r.lineage(hostType)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rtype := range lineage {
		if ext, ok := r.entries[rtype][name]; ok {
			return ext, true
		}
	}
	return nil, false
}

// lineage returns the cached lookup chain of hostType
func (r *Registry) lineage(hostType reflect.Type) []reflect.Type {
	return r.lineages.GetOrCompute(hostType, func() []reflect.Type {
		return types.Lineage(hostType)
	})
}

// dispatch resolves and runs an extension method. The lock is not held while the
// extension method runs so that it can call back into the registry.
func (r *Registry) dispatch(hostType reflect.Type, name string, args []any, caller any) (result any, err error) {
	start := time.Now()
	ext, ok := r.lookup(hostType, name)
	if !ok {
		err = gerrors.NewErrNotFound(types.Name(hostType), name)
		r.record(hostType, name, start, err)
		return nil, err
	}

	defer func() {
		if r.recoverPanics {
			if rec := recover(); rec != nil {
				result, err = nil, toPanicError(rec)
				r.logger.Errorf("extension method %s.%s panicked: %v", types.Name(hostType), name, err)
			}
		}
		r.record(hostType, name, start, err)
	}()

	return ext.Execute(hostType, args, caller)
}

// record updates the dispatch counters and the duration histogram
func (r *Registry) record(hostType reflect.Type, name string, start time.Time, err error) {
	r.dispatchCount.Inc()
	if err != nil {
		r.failureCount.Inc()
	}

	if r.metrics == nil {
		return
	}

	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	r.metrics.DispatchDuration().Record(context.Background(), elapsed,
		otelmetric.WithAttributes(
			attribute.String("extension.type", types.Name(hostType)),
			attribute.String("extension.name", name),
			attribute.Bool("extension.failed", err != nil),
		))
}

func (r *Registry) registerMetrics() error {
	provider := metric.New(metric.WithMeterProvider(r.meterProvider))
	meter := provider.Meter()
	if meter == nil {
		return nil
	}

	metrics, err := metric.NewExtensionMetric(meter)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		observer.ObserveInt64(metrics.DispatchCount(), r.dispatchCount.Load())
		observer.ObserveInt64(metrics.FailureCount(), r.failureCount.Load())
		observer.ObserveInt64(metrics.RegisteredCount(), r.registeredCount.Load())
		return nil
	}, metrics.DispatchCount(),
		metrics.FailureCount(),
		metrics.RegisteredCount(),
	)
	if err != nil {
		return err
	}

	r.metrics = metrics
	return nil
}

// hostTypeOf returns the host type referenced by host. Host types are named types
// declared in a package; predeclared types such as int or string cannot be extended.
func hostTypeOf(host any) (reflect.Type, error) {
	hostType, ok := types.Of(host)
	if !ok || hostType.PkgPath() == "" {
		return nil, fmt.Errorf("%w: %T", gerrors.ErrInvalidHostType, host)
	}
	return hostType, nil
}

// instanceTypeOf returns the host type of a non-nil instance
func instanceTypeOf(instance any) (reflect.Type, error) {
	if _, isType := instance.(reflect.Type); isType {
		return nil, fmt.Errorf("%w: %v is a type, use CallStatic", gerrors.ErrInvalidInstance, instance)
	}

	value := reflect.ValueOf(instance)
	if !value.IsValid() || (value.Kind() == reflect.Pointer && value.IsNil()) {
		return nil, fmt.Errorf("%w: nil instance", gerrors.ErrInvalidInstance)
	}
	return hostTypeOf(instance)
}

// toPanicError converts a recovered value into a PanicError
func toPanicError(rec any) *gerrors.PanicError {
	switch x := rec.(type) {
	case *gerrors.PanicError:
		return x
	case error:
		var pe *gerrors.PanicError
		if errors.As(x, &pe) {
			return pe
		}
		return gerrors.NewPanicError(x)
	default:
		return gerrors.NewPanicError(fmt.Errorf("%v", rec))
	}
}
