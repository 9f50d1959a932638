// Package parse turns loosely formatted text into typed Go values. Requests
// for the calculator tool arrive as JSON strings that are not always well
// formed, so decoding goes through a layered recovery: direct conversion for
// primitives, strict JSON for composites, then automatic JSON repair and
// finally unwrapping of schema-style {"type": ..., "value": ...} envelopes.
//
// The entry point is the generic [ParseStringAs].
package parse
