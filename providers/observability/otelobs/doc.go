// Package otelobs adapts OpenTelemetry tracing to the observability
// interfaces. [Tracer] turns observability spans into OTel spans on any
// trace.TracerProvider, and [Provider] pairs it with another provider's
// metrics and logging so one value can be placed in a context.
package otelobs
