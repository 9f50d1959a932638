package slogobs

import "strings"

// Format represents the output format for logs.
type Format string

const (
	// FormatCompact is one line per record with JSON attributes.
	// Example: 2026-10-16 10:40:35  INFO Span ended -> {"calc.operation":"add"}
	FormatCompact Format = "compact"

	// FormatPretty puts each attribute on its own indented line.
	FormatPretty Format = "pretty"

	// FormatJSON is one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name case-insensitively. Unknown names yield
// FormatCompact.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPretty:
		return FormatPretty
	case FormatJSON:
		return FormatJSON
	default:
		return FormatCompact
	}
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}
