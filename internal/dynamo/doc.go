// Package dynamo provides core simulation primitives for kinematic robot models.
//
// The package defines the fundamental types shared by the rest of the module:
//
//   - [State]: vector representing the generalized configuration of a model
//   - [System]: interface for first-order ODE systems (dX/dt = f(X, u, t))
//   - [Stepper]: numerical integrator interface
//   - [Metric]: per-step observer producing a scalar summary of a run
//
// # Thread Safety
//
// States and the models built on them are NOT thread-safe. Each simulation
// session owns its state exclusively; run independent sessions on separate
// goroutines instead of sharing one.
package dynamo
