// Package slogobs provides an observability.Provider backed by log/slog.
// Spans, counters and histograms are reported as structured log records
// through a [Handler] that writes compact, pretty or JSON output.
//
// The entry point is [New]. Without options the format and level come from
// the environment (CALC_LOG_FORMAT / LOG_FORMAT and CALC_LOG_LEVEL /
// LOG_LEVEL), defaulting to compact output at INFO.
package slogobs
