// Package calculator exposes the arithmetic core as a locally-executed tool.
// It supports addition and subtraction over floating-point operands.
//
// The main entry point is [NewCalculatorTool], which returns a ready-to-use
// [tool.Tool] that can be registered in a [tool.Catalog] and invoked with a
// JSON request. The underlying function is also exported as [Calc] for
// callers that already hold a typed [Input].
package calculator
