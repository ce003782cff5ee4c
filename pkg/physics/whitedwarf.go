package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/dwarfsim/pkg/dynamo"
)

// DefaultOriginCutoff is the radius at or below which the density equation
// switches to its regularized near-origin form.
const DefaultOriginCutoff = 1e-5

// Params is the parameter block for the structure equations.
type Params struct {
	// C0 is the central-density coefficient used by the near-origin branch.
	C0 float64
	// OriginCutoff separates the regular branch (r > OriginCutoff) from the
	// near-origin branch.
	OriginCutoff float64
}

func DefaultParams() Params {
	return Params{C0: 1.0, OriginCutoff: DefaultOriginCutoff}
}

// Validate reports whether p can be evaluated.
func (p Params) Validate() error {
	if math.IsNaN(p.C0) || math.IsInf(p.C0, 0) {
		return fmt.Errorf("c0 = %v: %w", p.C0, dynamo.ErrParameterBounds)
	}
	if math.IsNaN(p.OriginCutoff) || math.IsInf(p.OriginCutoff, 0) || p.OriginCutoff < 0 {
		return fmt.Errorf("origin_cutoff = %v: %w", p.OriginCutoff, dynamo.ErrParameterBounds)
	}
	return nil
}

// Evaluate returns (dm/dr, dp/dr) for the white dwarf structure equations
//
//	m' = r^2 p
//	p' = -3 m p sqrt(1 + p^(2/3)) / (r^2 p^(2/3))
//
// at radius r and state y = (m, p). The formulas apply only where p > 0;
// at and beyond the surface, and for a NaN density, both derivatives vanish.
// For r <= OriginCutoff the 1/r^2 term is replaced by the leading-order mass
// m ~ (4/3) pi r^3 c0. Other floating-point domain problems are not checked;
// a NaN mass or an infinite radius passes through to the result.
func Evaluate(r float64, y [2]float64, p Params) [2]float64 {
	m, rho := y[0], y[1]
	if !(rho > 0) {
		return [2]float64{0, 0}
	}

	rho23 := math.Pow(rho, 2.0/3.0)
	gamma := math.Sqrt(1 + rho23)

	var dp float64
	if r > p.OriginCutoff {
		dp = -3 * m * rho * gamma / (r * r * rho23)
	} else {
		dp = -4 * math.Pi * r * p.C0 * rho * gamma / rho23
	}

	return [2]float64{r * r * rho, dp}
}

// WhiteDwarf models the internal structure of a white dwarf.
// State: [mass, density]; the independent variable is the radius.
type WhiteDwarf struct {
	params Params
}

var (
	_ dynamo.System       = (*WhiteDwarf)(nil)
	_ dynamo.Configurable = (*WhiteDwarf)(nil)
)

func NewWhiteDwarf(p Params) *WhiteDwarf {
	return &WhiteDwarf{params: p}
}

func (w *WhiteDwarf) StateDim() int   { return 2 }
func (w *WhiteDwarf) ControlDim() int { return 0 }

func (w *WhiteDwarf) Params() Params { return w.params }

// Derive implements dynamo.System with t as the radius. Control input is ignored.
func (w *WhiteDwarf) Derive(x dynamo.State, _ dynamo.Control, r float64) dynamo.State {
	if len(x) < 2 {
		return make(dynamo.State, 2)
	}
	f := Evaluate(r, [2]float64{x[0], x[1]}, w.params)
	return dynamo.State{f[0], f[1]}
}

// Func writes the derivatives at radius r into f. It only fails when y or f
// is shorter than the state dimension, in which case f is left untouched.
func (w *WhiteDwarf) Func(r float64, y, f []float64) dynamo.Status {
	return evalInto(r, y, f, w.params)
}

// RHS returns the buffer-form right-hand side bound to a snapshot of the
// current parameters. Later SetParam calls do not affect it.
func (w *WhiteDwarf) RHS() dynamo.Func {
	p := w.params
	return func(r float64, y, f []float64) dynamo.Status {
		return evalInto(r, y, f, p)
	}
}

func evalInto(r float64, y, f []float64, p Params) dynamo.Status {
	if len(y) < 2 || len(f) < 2 {
		return dynamo.StatusBadLength
	}
	out := Evaluate(r, [2]float64{y[0], y[1]}, p)
	f[0], f[1] = out[0], out[1]
	return dynamo.StatusSuccess
}

// DefaultState is a centre with no enclosed mass and unit density.
func (w *WhiteDwarf) DefaultState() dynamo.State { return dynamo.State{0.0, 1.0} }

func (w *WhiteDwarf) GetParams() map[string]float64 {
	return map[string]float64{"c0": w.params.C0, "origin_cutoff": w.params.OriginCutoff}
}

func (w *WhiteDwarf) SetParam(name string, value float64) error {
	next := w.params
	switch name {
	case "c0":
		next.C0 = value
	case "origin_cutoff":
		next.OriginCutoff = value
	default:
		return fmt.Errorf("white dwarf %q: %w", name, dynamo.ErrUnknownParameter)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	w.params = next
	return nil
}
