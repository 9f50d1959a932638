// Package calculator provides the stateless arithmetic operations at the
// heart of this module: addition and subtraction over float64 operands, plus
// checked int64 variants that report overflow instead of wrapping.
//
// The main entry point is [Calculator]. Its zero value is ready to use and
// holds no state, so a single instance can be shared freely between
// goroutines. The package-level [Add] and [Subtract] functions are
// shorthands for calling the same methods on a zero [Calculator].
package calculator
