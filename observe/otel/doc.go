// Package otel provides an OpenTelemetry observer plugin for the rwcell
// library. It emits span events (acquire, release, contention) with low
// overhead.
package otel
