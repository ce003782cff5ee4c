package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for right-hand side evaluation.
var (
	// ErrInvalidState indicates a derivative with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownParameter indicates a parameter name the system does not define.
	ErrUnknownParameter = errors.New("dynamo: unknown parameter")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// EvalError wraps an error with the point at which the right-hand side was evaluated.
type EvalError struct {
	T       float64
	State   State
	Wrapped error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("t=%g x=%v: %v", e.T, []float64(e.State), e.Wrapped)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}
