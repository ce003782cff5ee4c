// Package physics provides dynamical system models for simulation.
//
// [WhiteDwarf] implements the [dynamo.System] interface for the structure of
// a white dwarf star: dimensionless mass and density as functions of the
// dimensionless radius,
//
//	m' = r^2 p
//	p' = -3 m p sqrt(1 + p^(2/3)) / (r^2 p^(2/3))
//
// The model is a right-hand side only. Stepping, step-size control and
// surface search belong to whichever integrator drives it.
//
// The same equations are exposed three ways:
//
//   - [Evaluate]: pure function on fixed-size arrays
//   - [WhiteDwarf.Derive]: allocating [dynamo.System] form
//   - [WhiteDwarf.Func] and [WhiteDwarf.RHS]: buffer form with a [dynamo.Status]
//
// # Domain Errors
//
// By default NaN and Inf propagate silently. Wrap the model in a [Guard] to
// have them reported:
//
//	g := physics.NewGuard(physics.NewWhiteDwarf(p), logger)
//	dx, err := g.DeriveChecked(x, nil, r)
//	if errors.Is(err, dynamo.ErrInvalidState) {
//	    // stop the integration
//	}
package physics
