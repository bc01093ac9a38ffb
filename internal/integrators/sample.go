package integrators

import "github.com/junyaoshi/snakesim/internal/dynamo"

// Sample integrates sys over [t0, t0+span] under the constant control u,
// passing through points equally spaced sub-intervals, and returns the state
// at the final sample. A zero span returns a copy of x0 unchanged.
func Sample(stepper dynamo.Stepper, sys dynamo.System, x0 dynamo.State, u dynamo.Control, t0, span float64, points int) dynamo.State {
	if span == 0 {
		return x0.Clone()
	}
	if points < 1 {
		points = 1
	}

	dt := span / float64(points)
	x := x0.Clone()
	t := t0
	for i := 0; i < points; i++ {
		x = stepper.Step(sys, x, u, t, dt)
		t += dt
	}
	return x
}
