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

package metric

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// ExtensionMetric defines the extension registry instrumentation
type ExtensionMetric struct {
	// Specifies the total number of extension method calls
	dispatchCount metric.Int64ObservableCounter
	// Specifies the total number of extension method calls that failed
	failureCount metric.Int64ObservableCounter
	// Specifies the number of extension methods currently registered
	registeredCount metric.Int64ObservableGauge
	// Specifies the extension method call duration
	// This is expressed in milliseconds
	dispatchDuration metric.Float64Histogram
}

// NewExtensionMetric creates an instance of ExtensionMetric
func NewExtensionMetric(meter metric.Meter) (*ExtensionMetric, error) {
	extensionMetric := new(ExtensionMetric)
	var err error

	if extensionMetric.dispatchCount, err = meter.Int64ObservableCounter(
		"extension_dispatch_count",
		metric.WithDescription("Total number of extension method calls"),
	); err != nil {
		return nil, fmt.Errorf("failed to create dispatchCount instrument, %w", err)
	}

	if extensionMetric.failureCount, err = meter.Int64ObservableCounter(
		"extension_dispatch_failure_count",
		metric.WithDescription("Total number of failed extension method calls"),
	); err != nil {
		return nil, fmt.Errorf("failed to create failureCount instrument, %w", err)
	}

	if extensionMetric.registeredCount, err = meter.Int64ObservableGauge(
		"extension_registered_count",
		metric.WithDescription("Number of extension methods registered"),
	); err != nil {
		return nil, fmt.Errorf("failed to create registeredCount instrument, %w", err)
	}

	if extensionMetric.dispatchDuration, err = meter.Float64Histogram(
		"extension_dispatch_duration",
		metric.WithDescription("The latency of extension method calls in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create dispatchDuration instrument, %w", err)
	}

	return extensionMetric, nil
}

// DispatchCount returns the total number of extension method calls
func (x *ExtensionMetric) DispatchCount() metric.Int64ObservableCounter {
	return x.dispatchCount
}

// FailureCount returns the total number of failed extension method calls
func (x *ExtensionMetric) FailureCount() metric.Int64ObservableCounter {
	return x.failureCount
}

// RegisteredCount returns the number of extension methods registered
func (x *ExtensionMetric) RegisteredCount() metric.Int64ObservableGauge {
	return x.registeredCount
}

// DispatchDuration returns the extension method call duration in milliseconds
func (x *ExtensionMetric) DispatchDuration() metric.Float64Histogram {
	return x.dispatchDuration
}
