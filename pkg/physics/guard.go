package physics

import (
	"log/slog"

	"github.com/san-kum/dwarfsim/pkg/dynamo"
)

// Guard wraps a System and reports NaN or Inf derivatives instead of letting
// them propagate silently into the integrator.
type Guard struct {
	sys    dynamo.System
	logger *slog.Logger
}

var _ dynamo.System = (*Guard)(nil)

// NewGuard returns a guard around sys. A nil logger uses slog.Default.
func NewGuard(sys dynamo.System, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{sys: sys, logger: logger.With("component", "guard")}
}

func (g *Guard) StateDim() int   { return g.sys.StateDim() }
func (g *Guard) ControlDim() int { return g.sys.ControlDim() }

// Derive forwards to the wrapped system unchanged.
func (g *Guard) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return g.sys.Derive(x, u, t)
}

// DeriveChecked evaluates the wrapped system and returns an *dynamo.EvalError
// when the state has the wrong length or the derivative is not finite.
// The error wraps the sentinel that Status.Err gives for the same condition.
func (g *Guard) DeriveChecked(x dynamo.State, u dynamo.Control, t float64) (dynamo.State, error) {
	var dx dynamo.State
	status := dynamo.StatusBadLength
	if len(x) == g.sys.StateDim() {
		dx = g.sys.Derive(x, u, t)
		status = g.inspect(x, dx, t)
	}

	if err := status.Err(); err != nil {
		return dx, &dynamo.EvalError{T: t, State: x.Clone(), Wrapped: err}
	}
	return dx, nil
}

// Func is the buffer form of DeriveChecked. The derivative is always written
// to f when the lengths allow it; the status tells the caller whether to trust it.
func (g *Guard) Func(t float64, y, f []float64) dynamo.Status {
	n := g.sys.StateDim()
	if len(y) < n || len(f) < n {
		return dynamo.StatusBadLength
	}

	x := dynamo.State(y[:n])
	dx := g.sys.Derive(x, nil, t)
	copy(f, dx)
	return g.inspect(x, dx, t)
}

func (g *Guard) inspect(x, dx dynamo.State, t float64) dynamo.Status {
	if dx.IsValid() {
		return dynamo.StatusSuccess
	}
	g.logger.Warn("non-finite derivative",
		"t", t,
		"state", []float64(x),
		"state_norm", x.Norm(),
		"derivative", []float64(dx),
	)
	return dynamo.StatusDomainError
}
