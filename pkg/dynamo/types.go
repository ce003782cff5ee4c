package dynamo

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

type Control []float64

// System is a first-order ODE right-hand side dX/dt = f(X, u, t).
// The independent variable need not be time; radial models pass the radius as t.
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

// Func is the buffer form of a right-hand side: it writes f(t, y) into dst
// and reports a status to the driving integrator.
type Func func(t float64, y, dst []float64) Status

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Status is the code a right-hand side returns to its integrator.
type Status int

const (
	StatusSuccess Status = iota
	StatusBadLength
	StatusDomainError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusBadLength:
		return "bad length"
	case StatusDomainError:
		return "domain error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Err maps a status onto the package's sentinel errors. Success maps to nil.
func (s Status) Err() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusBadLength:
		return ErrDimensionMismatch
	case StatusDomainError:
		return ErrInvalidState
	default:
		return fmt.Errorf("dynamo: unknown status %d", int(s))
	}
}
