package calculator

import (
	"errors"
	"fmt"
)

// Operation names an arithmetic operation.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
)

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}

// ErrOverflow is the sentinel matched by every [*OverflowError].
var ErrOverflow = errors.New("integer overflow")

// OverflowError reports an integer operation whose exact result does not fit
// in an int64.
type OverflowError struct {
	Op Operation
	A  int64
	B  int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s(%d, %d): %v", e.Op, e.A, e.B, ErrOverflow)
}

// Unwrap lets errors.Is(err, ErrOverflow) succeed.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
