package cost

import (
	"testing"
)

func TestToolMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{
			name:     "explicit currency",
			metrics:  ToolMetrics{Amount: 0.001, Currency: "EUR"},
			expected: "0.001000 EUR",
		},
		{
			name:     "default currency",
			metrics:  ToolMetrics{Amount: 0.5},
			expected: "0.500000 USD",
		},
		{
			name:     "with cost description",
			metrics:  ToolMetrics{Amount: 0, Currency: "USD", CostDescription: "local computation"},
			expected: "0.000000 USD (local computation)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestToolMetricsMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{
			name:     "with accuracy only",
			metrics:  ToolMetrics{Accuracy: 0.95},
			expected: "Accuracy: 95.0%",
		},
		{
			name:     "with duration only",
			metrics:  ToolMetrics{AverageDurationInMillis: 2},
			expected: "Avg Duration: 2ms",
		},
		{
			name:     "with all metrics",
			metrics:  ToolMetrics{Accuracy: 1.0, AverageDurationInMillis: 2},
			expected: "Accuracy: 100.0%, Avg Duration: 2ms",
		},
		{
			name:     "with no metrics",
			metrics:  ToolMetrics{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.MetricsString(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestToolMetricsIsFree(t *testing.T) {
	if !(ToolMetrics{}).IsFree() {
		t.Error("Expected zero-amount metrics to be free")
	}
	if (ToolMetrics{Amount: 0.01}).IsFree() {
		t.Error("Expected non-zero amount not to be free")
	}
}
