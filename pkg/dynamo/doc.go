// Package dynamo provides the primitives shared by ODE right-hand sides and
// the integrators that drive them.
//
// The package defines the contract an external solver consumes:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Func]: buffer-form right-hand side returning a [Status]
//   - [Configurable]: runtime parameter access
//
// # Example
//
//	dyn := physics.NewWhiteDwarf(physics.DefaultParams())
//	dx := dyn.Derive(dynamo.State{0, 1}, nil, 0.5)
//
// # Thread Safety
//
// Nothing in this package holds mutable state. Implementations of [System]
// document their own guarantees.
package dynamo
