package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/MatanReuvenTal/devops-lab/core/calculator"
	"github.com/MatanReuvenTal/devops-lab/core/cost"
	"github.com/MatanReuvenTal/devops-lab/providers/observability"
	"github.com/MatanReuvenTal/devops-lab/providers/tool"
)

// ErrUnsupportedOperation is returned by [Calc] when Input.Op names an
// operation the calculator does not implement.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// NewCalculatorTool returns a [tool.Tool] configured for basic arithmetic.
// It registers [Calc] as its execution function and annotates the tool with
// zero-cost local metrics, since the computation runs in-process.
func NewCalculatorTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"Calculator",
		Calc,
		tool.WithDescription("A simple calculator that adds or subtracts two numbers."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.0, // local execution
			Currency:                cost.DefaultCurrency,
			CostDescription:         "local computation",
			Accuracy:                1.0,
			AverageDurationInMillis: 2,
		}),
	)
}

// Calc applies req.Op to the operands req.A and req.B. Supported operations
// are "add"/"+" and "sub"/"-". Results follow IEEE 754 semantics, so an
// overflowing sum saturates to an infinity rather than failing; see
// [Output.MarshalJSON] for how it is encoded. Any other Op returns an error
// wrapping [ErrUnsupportedOperation].
//
// Example:
//
//	out, err := calculator.Calc(ctx, calculator.Input{A: 5, B: 3, Op: "sub"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.Result) // 2
func Calc(ctx context.Context, req Input) (Output, error) {
	var (
		op     calculator.Operation
		result float64
	)
	switch req.Op {
	case "add", "+":
		op, result = calculator.OpAdd, calculator.Add(req.A, req.B)
	case "sub", "-":
		op, result = calculator.OpSubtract, calculator.Subtract(req.A, req.B)
	default:
		return Output{}, fmt.Errorf("%w: %q", ErrUnsupportedOperation, req.Op)
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.SetAttributes(
			observability.String(observability.AttrCalcOperation, op.String()),
			observability.Float64(observability.AttrCalcOperandA, req.A),
			observability.Float64(observability.AttrCalcOperandB, req.B),
			observability.Float64(observability.AttrCalcResult, result),
		)
	}

	return Output{Result: result}, nil
}

// Input holds the two operands and the operation to be applied by [Calc].
// The schema marks every field required, but decoding does not enforce it:
// a missing operand is 0 and a missing Op is rejected by [Calc].
type Input struct {
	A  float64 `json:"A"  jsonschema:"description=First operand,required"`
	B  float64 `json:"B"  jsonschema:"description=Second operand,required"`
	Op string  `json:"Op" jsonschema:"description=Operation type,enum=add,enum=sub,enum=+,enum=-,required"`
}

// Output carries the single floating-point result produced by [Calc].
type Output struct {
	Result float64 `json:"result"  jsonschema:"description=The result of the calculation"`
}

type plainOutput Output

// MarshalJSON encodes Result as a JSON number. JSON has no number for an
// infinity or NaN, so those are written as the strings "+Inf", "-Inf" and
// "NaN".
func (o Output) MarshalJSON() ([]byte, error) {
	if math.IsInf(o.Result, 0) || math.IsNaN(o.Result) {
		return json.Marshal(struct {
			Result string `json:"result"`
		}{Result: strconv.FormatFloat(o.Result, 'g', -1, 64)})
	}
	return json.Marshal(plainOutput(o))
}

// UnmarshalJSON accepts a numeric result or one of the strings written by
// [Output.MarshalJSON].
func (o *Output) UnmarshalJSON(data []byte) error {
	var raw struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Result) == 0 || string(raw.Result) == "null" {
		*o = Output{}
		return nil
	}

	var text string
	if err := json.Unmarshal(raw.Result, &text); err == nil {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("decode result %q: %w", text, err)
		}
		o.Result = value
		return nil
	}

	var value float64
	if err := json.Unmarshal(raw.Result, &value); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	o.Result = value
	return nil
}
