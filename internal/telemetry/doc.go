// Package telemetry holds the ambient observability plumbing of statespace:
// structured logging (log/slog), tracing spans (OpenTelemetry) and counters
// (Prometheus client).
//
// Nothing here influences search results. Spans and metrics are write-only sinks;
// when no OpenTelemetry provider is installed the global no-op tracer is used.
// Metrics live in a package registry (Registry) instead of the Prometheus default
// registry so embedding programs can decide whether to expose them.
package telemetry
