package calculator

import "math"

// Calculator exposes pure arithmetic operations. It carries no fields; every
// method is a deterministic function of its arguments.
type Calculator struct{}

// New returns a ready-to-use Calculator. Equivalent to Calculator{}.
func New() *Calculator {
	return &Calculator{}
}

// Add returns a + b. Non-integral operands are subject to IEEE 754 rounding,
// and results beyond the float64 range become ±Inf.
//
// Example:
//
//	calculator.New().Add(2.5, 0.5) // 3
func (Calculator) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b with the same precision contract as [Calculator.Add].
func (Calculator) Subtract(a, b float64) float64 {
	return a - b
}

// AddInt returns the exact sum of a and b. If the sum does not fit in an
// int64 it returns 0 and an [*OverflowError].
func (Calculator) AddInt(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, &OverflowError{Op: OpAdd, A: a, B: b}
	}
	return a + b, nil
}

// SubtractInt returns the exact difference a - b. If the difference does not
// fit in an int64 it returns 0 and an [*OverflowError].
func (Calculator) SubtractInt(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, &OverflowError{Op: OpSubtract, A: a, B: b}
	}
	return a - b, nil
}

// Add is shorthand for Calculator{}.Add.
func Add(a, b float64) float64 {
	return Calculator{}.Add(a, b)
}

// Subtract is shorthand for Calculator{}.Subtract.
func Subtract(a, b float64) float64 {
	return Calculator{}.Subtract(a, b)
}
