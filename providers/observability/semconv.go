package observability

// Semantic conventions for observability attributes.

// --- Tool Execution Attributes ---

const (
	AttrToolName        = "tool.name"
	AttrToolDescription = "tool.description"
	AttrToolCallID      = "tool.call.id"
	AttrToolInput       = "tool.input"
	AttrToolOutput      = "tool.output"
	AttrToolDuration    = "tool.duration"
	AttrToolError       = "tool.error"

	AttrToolCostAmount       = "tool.cost.amount"
	AttrToolCostCurrency     = "tool.cost.currency"
	AttrToolCostDescription  = "tool.cost.description"
	AttrToolMetricsAccuracy  = "tool.metrics.accuracy"
	AttrToolMetricsAvgMillis = "tool.metrics.avg_duration_ms"
)

// --- Calculator Attributes ---

const (
	// AttrCalcOperation is the normalized operation name ("add", "subtract").
	AttrCalcOperation = "calc.operation"
	AttrCalcOperandA  = "calc.operand.a"
	AttrCalcOperandB  = "calc.operand.b"
	AttrCalcResult    = "calc.result"
)

// --- General Attributes ---

const (
	AttrError             = "error"
	AttrErrorType         = "error.type"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	SpanToolExecution = "tool.execution"
)

// --- Event Names ---

const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"
)

// --- Metric Names ---

const (
	// MetricToolCallCount counts tool calls, labeled by tool name and status.
	MetricToolCallCount = "calc.tool.call.count"

	// MetricToolCallDuration records tool call latency in milliseconds.
	MetricToolCallDuration = "calc.tool.call.duration"
)
