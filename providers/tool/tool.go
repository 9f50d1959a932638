package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MatanReuvenTal/devops-lab/core/cost"
	"github.com/MatanReuvenTal/devops-lab/core/parse"
	"github.com/MatanReuvenTal/devops-lab/internal/jsonschema"
	"github.com/MatanReuvenTal/devops-lab/providers/observability"
)

// Info is the metadata advertised for a tool.
type Info struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Output      *jsonschema.Schema `json:"output,omitempty"`
	Metrics     *cost.ToolMetrics  `json:"metrics,omitempty"`
}

// Tool binds a name and description to a typed function, with JSON schemas
// derived from I and O. Use [NewTool] to construct one.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics contains optional cost and performance metrics for this tool execution.
	Metrics *cost.ToolMetrics
}

// GenericTool is the type-erased view of a [Tool].
type GenericTool interface {
	// ToolInfo returns the tool's name, description and schemas.
	ToolInfo() Info

	// Call decodes inputJSON, runs the tool and returns its JSON-encoded output.
	Call(ctx context.Context, inputJSON string) (string, error)

	// GetMetrics returns the configured metrics, or nil.
	GetMetrics() *cost.ToolMetrics
}

type funcToolOptions struct {
	Description string
	Metrics     *cost.ToolMetrics
}

// WithDescription sets a human-readable description for the tool.
func WithDescription(description string) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Description = description
	}
}

// WithMetrics sets the cost and quality metrics of the tool.
func WithMetrics(toolMetrics cost.ToolMetrics) func(tool *funcToolOptions) {
	return func(s *funcToolOptions) {
		s.Metrics = &toolMetrics
	}
}

// NewTool constructs a [Tool] with the given name and handler function.
//
// Example:
//
//	adder := tool.NewTool("adder", addFunc,
//	    tool.WithDescription("Adds two numbers."),
//	    tool.WithMetrics(cost.ToolMetrics{Amount: 0, Currency: "USD"}),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(tool *funcToolOptions)) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.GenerateJSONSchema[I](),
		Output:      jsonschema.GenerateJSONSchema[O](),
		Function:    function,
		Metrics:     toolOptions.Metrics,
	}
}

// ToolInfo returns the [Info] describing this tool.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Output:      t.Output,
		Metrics:     t.Metrics,
	}
}

// Call decodes inputJSON into I with [parse.ParseStringAs], runs the
// function and encodes its result as JSON.
//
// Each call gets a fresh ID. When ctx carries a span, start/end events and
// the input, output, duration and cost are recorded on it. When ctx carries
// an observer but no span, Call opens its own tool.execution span and also
// updates the call counter and duration histogram.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	callID := uuid.NewString()
	observer := observability.ObserverFromContext(ctx)

	span := observability.SpanFromContext(ctx)
	if span == nil && observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanToolExecution,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolCallID, callID),
		)
		defer span.End()
	}

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolCallID, callID),
			observability.String(observability.AttrToolInput, observability.TruncateString(inputJSON, 0)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()
	output, err := t.run(ctx, inputJSON)
	duration := time.Since(start)

	if observer != nil {
		t.recordMetrics(ctx, observer, duration, err)
	}

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
			span.SetStatus(observability.StatusError, err.Error())
		}
		return "", err
	}

	if span != nil {
		span.SetAttributes(t.resultAttributes(output, duration)...)
		span.SetStatus(observability.StatusOK, "")
	}

	return output, nil
}

func (t *Tool[I, O]) run(ctx context.Context, inputJSON string) (string, error) {
	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		return "", fmt.Errorf("tool %s: decode input: %w", t.Name, err)
	}

	output, err := t.Function(ctx, input)
	if err != nil {
		return "", fmt.Errorf("tool %s: %w", t.Name, err)
	}

	raw, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("tool %s: encode output: %w", t.Name, err)
	}
	return string(raw), nil
}

func (t *Tool[I, O]) resultAttributes(output string, duration time.Duration) []observability.Attribute {
	attrs := []observability.Attribute{
		observability.String(observability.AttrToolOutput, observability.TruncateString(output, 0)),
		observability.Duration(observability.AttrToolDuration, duration),
	}
	if t.Metrics == nil {
		return attrs
	}

	attrs = append(attrs,
		observability.Float64(observability.AttrToolCostAmount, t.Metrics.Amount),
		observability.String(observability.AttrToolCostCurrency, t.Metrics.Currency),
	)
	if t.Metrics.CostDescription != "" {
		attrs = append(attrs, observability.String(observability.AttrToolCostDescription, t.Metrics.CostDescription))
	}
	if t.Metrics.Accuracy > 0 {
		attrs = append(attrs, observability.Float64(observability.AttrToolMetricsAccuracy, t.Metrics.Accuracy))
	}
	if t.Metrics.AverageDurationInMillis > 0 {
		attrs = append(attrs, observability.Int64(observability.AttrToolMetricsAvgMillis, t.Metrics.AverageDurationInMillis))
	}
	return attrs
}

func (t *Tool[I, O]) recordMetrics(ctx context.Context, observer observability.Provider, duration time.Duration, err error) {
	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
	}
	labels := []observability.Attribute{
		observability.String(observability.AttrToolName, t.Name),
		observability.String(observability.AttrStatus, status.String()),
	}

	observer.Counter(observability.MetricToolCallCount).Add(ctx, 1, labels...)
	observer.Histogram(observability.MetricToolCallDuration).Record(ctx, float64(duration)/float64(time.Millisecond), labels...)
}

// GetMetrics returns the metrics (cost and performance data) for this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}
