// Package observability defines the tracing, metrics and logging interfaces
// used by the tool layer, plus the semantic-convention keys recorded when a
// calculator operation runs.
//
// [Provider] composes [Tracer], [Metrics] and [Logger]. Callers propagate a
// [Provider] and the active [Span] through a [context.Context] with
// [ContextWithObserver] and [ContextWithSpan], and read them back with
// [ObserverFromContext] and [SpanFromContext]. Concrete providers live in
// the slogobs and otelobs subpackages.
package observability
