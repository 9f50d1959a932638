package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculator_Add verifies the sum for the documented scenarios.
func TestCalculator_Add(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive operands", 3, 5, 8},
		{"opposites cancel", -4, 4, 0},
		{"both negative", -1, -2, -3},
		{"zero operands", 0, 0, 0},
		{"fractional", 2.5, 0.5, 3.0},
	}

	calc := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, calc.Add(tc.a, tc.b), 1e-9)
		})
	}
}

// TestCalculator_Subtract verifies the difference for the documented scenarios.
func TestCalculator_Subtract(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive result", 5, 3, 2},
		{"negative result", 0, 7, -7},
		{"zero result", 5, 5, 0},
		{"fractional", 1.5, 0.25, 1.25},
	}

	calc := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, calc.Subtract(tc.a, tc.b), 1e-9)
		})
	}
}

// TestCalculator_FloatOverflowSaturates verifies results past the float64
// range become infinities rather than errors.
func TestCalculator_FloatOverflowSaturates(t *testing.T) {
	assert.True(t, math.IsInf(Add(math.MaxFloat64, math.MaxFloat64), 1))
	assert.True(t, math.IsInf(Subtract(-math.MaxFloat64, math.MaxFloat64), -1))
}

// TestCalculator_ZeroValue verifies the zero value and the package-level
// helpers agree with a constructed Calculator.
func TestCalculator_ZeroValue(t *testing.T) {
	var zero Calculator
	assert.Equal(t, New().Add(3, 5), zero.Add(3, 5))
	assert.Equal(t, 8.0, Add(3, 5))
	assert.Equal(t, 2.0, Subtract(5, 3))
}

var intSamples = []int64{
	0, 1, -1, 2, 7, -7, 42, -1000, 123456789, -987654321,
	math.MaxInt32, math.MinInt32, math.MaxInt64 / 2, math.MinInt64 / 2,
}

// TestCalculator_IntProperties checks commutativity, identity and the
// add/subtract inverse across a grid of operands that cannot overflow.
func TestCalculator_IntProperties(t *testing.T) {
	calc := Calculator{}
	for _, a := range intSamples {
		_, err := calc.AddInt(a, 0)
		require.NoError(t, err)

		for _, b := range intSamples {
			ab, err := calc.AddInt(a, b)
			require.NoError(t, err, "AddInt(%d, %d)", a, b)
			ba, err := calc.AddInt(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "commutativity for %d, %d", a, b)
			assert.Equal(t, a+b, ab)

			diff, err := calc.SubtractInt(a, b)
			require.NoError(t, err, "SubtractInt(%d, %d)", a, b)
			assert.Equal(t, a-b, diff)

			back, err := calc.SubtractInt(ab, b)
			require.NoError(t, err)
			assert.Equal(t, a, back, "inverse for %d, %d", a, b)
		}

		same, err := calc.SubtractInt(a, 0)
		require.NoError(t, err)
		assert.Equal(t, a, same)
	}
}

// TestCalculator_IntOverflow verifies out-of-range results fail with
// ErrOverflow instead of wrapping.
func TestCalculator_IntOverflow(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		call func() (int64, error)
	}{
		{"add past max", OpAdd, func() (int64, error) { return Calculator{}.AddInt(math.MaxInt64, 1) }},
		{"add past min", OpAdd, func() (int64, error) { return Calculator{}.AddInt(math.MinInt64, -1) }},
		{"subtract past min", OpSubtract, func() (int64, error) { return Calculator{}.SubtractInt(math.MinInt64, 1) }},
		{"subtract past max", OpSubtract, func() (int64, error) { return Calculator{}.SubtractInt(math.MaxInt64, -1) }},
		{"subtract min from zero", OpSubtract, func() (int64, error) { return Calculator{}.SubtractInt(0, math.MinInt64) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.call()
			require.Error(t, err)
			assert.Zero(t, result)
			assert.True(t, errors.Is(err, ErrOverflow))

			var overflow *OverflowError
			require.True(t, errors.As(err, &overflow))
			assert.Equal(t, tc.op, overflow.Op)
		})
	}
}

// TestCalculator_IntBoundaries verifies results landing exactly on the int64
// limits are accepted.
func TestCalculator_IntBoundaries(t *testing.T) {
	calc := Calculator{}

	sum, err := calc.AddInt(math.MaxInt64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), sum)

	diff, err := calc.SubtractInt(math.MinInt64+1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), diff)

	diff, err = calc.SubtractInt(-1, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), diff)
}

func TestOverflowError_Error(t *testing.T) {
	err := &OverflowError{Op: OpAdd, A: 1, B: 2}
	assert.Equal(t, "add(1, 2): integer overflow", err.Error())
}
