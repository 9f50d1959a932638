// Package tool wraps typed Go functions so they can be invoked with
// JSON-encoded input, described by auto-derived JSON schemas, and traced
// through the observability interfaces.
//
// [NewTool] builds a [Tool]; [WithDescription] and [WithMetrics] configure
// it. Every Tool satisfies [GenericTool], and a [Catalog] keeps a
// thread-safe, case-insensitive registry of them.
package tool
