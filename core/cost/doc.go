// Package cost describes the execution cost and quality metadata attached to
// a tool. The single type is [ToolMetrics]; locally executed tools such as
// the calculator report a zero amount with full accuracy.
package cost
