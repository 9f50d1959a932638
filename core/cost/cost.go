package cost

import (
	"fmt"
	"strings"
)

// DefaultCurrency is assumed when ToolMetrics.Currency is empty.
const DefaultCurrency = "USD"

// ToolMetrics carries the per-call cost and quality metadata of a tool.
//
// Example usage:
//
//	metrics := cost.ToolMetrics{
//	    Amount:                  0,
//	    Currency:                "USD",
//	    CostDescription:         "local computation",
//	    Accuracy:                1.0,
//	    AverageDurationInMillis: 1,
//	}
type ToolMetrics struct {
	// Amount is the cost of executing the tool once.
	Amount float64 `json:"amount"`

	// Currency is the unit of Amount (e.g. "USD", "credits").
	Currency string `json:"currency,omitempty"`

	// CostDescription adds context such as "per call" or "local computation".
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is a reliability score in [0, 1].
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical wall time of one call.
	AverageDurationInMillis int64 `json:"average_duration_in_millis,omitempty"`
}

// String returns the amount and currency, followed by the cost description
// when one is set.
func (tm ToolMetrics) String() string {
	currency := tm.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	result := fmt.Sprintf("%.6f %s", tm.Amount, currency)
	if tm.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, tm.CostDescription)
	}
	return result
}

// MetricsString renders the quality metrics that are set, comma separated.
// It returns an empty string when none are set.
func (tm ToolMetrics) MetricsString() string {
	var parts []string
	if tm.Accuracy > 0 {
		parts = append(parts, fmt.Sprintf("Accuracy: %.1f%%", tm.Accuracy*100))
	}
	if tm.AverageDurationInMillis > 0 {
		parts = append(parts, fmt.Sprintf("Avg Duration: %dms", tm.AverageDurationInMillis))
	}
	return strings.Join(parts, ", ")
}

// IsFree reports whether a call costs nothing.
func (tm ToolMetrics) IsFree() bool {
	return tm.Amount == 0
}
