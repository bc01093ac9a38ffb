package integrators

import (
	"math"
	"testing"

	"github.com/junyaoshi/snakesim/internal/dynamo"
)

// oscillator is x'' = -x, written as [x, v].
type oscillator struct{}

func (oscillator) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (oscillator) StateDim() int   { return 2 }
func (oscillator) ControlDim() int { return 0 }

// forced has x' = u, so every stepper reproduces it exactly.
type forced struct{}

func (forced) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{u[0]}
}

func (forced) StateDim() int   { return 1 }
func (forced) ControlDim() int { return 1 }

func integrateOscillator(t *testing.T, stepper dynamo.Stepper, steps int, tol float64) {
	t.Helper()

	sys := oscillator{}
	tEnd := 2 * math.Pi
	dt := tEnd / float64(steps)

	x := dynamo.State{1, 0}
	for i := 0; i < steps; i++ {
		x = stepper.Step(sys, x, nil, float64(i)*dt, dt)
	}

	want := math.Cos(tEnd)
	if math.Abs(x[0]-want) > tol {
		t.Errorf("x(%f): expected %f, got %f (error %g)", tEnd, want, x[0], math.Abs(x[0]-want))
	}
}

func TestEulerOscillator(t *testing.T) {
	integrateOscillator(t, NewEuler(), 10000, 0.01)
}

func TestRK4Oscillator(t *testing.T) {
	integrateOscillator(t, NewRK4(), 600, 1e-8)
}

func TestRK45Oscillator(t *testing.T) {
	integrateOscillator(t, NewRK45(), 600, 1e-8)
}

func TestRK45Adaptive(t *testing.T) {
	sys := oscillator{}
	r := NewRK45()

	x, dtNew, err := r.StepAdaptive(sys, dynamo.State{1, 0}, nil, 0, 0.1, 1e-8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(x[0]-math.Cos(0.1)) > 1e-8 {
		t.Errorf("expected %f, got %f", math.Cos(0.1), x[0])
	}
	if dtNew <= 0 {
		t.Errorf("expected positive suggested step, got %f", dtNew)
	}
}

func TestSampleZeroSpan(t *testing.T) {
	x0 := dynamo.State{1, 2}

	out := Sample(NewRK4(), oscillator{}, x0, nil, 0, 0, 10)
	if out[0] != 1 || out[1] != 2 {
		t.Errorf("expected unchanged state, got %v", out)
	}

	out[0] = 99
	if x0[0] != 1 {
		t.Error("expected zero-span result to be a copy, not an alias")
	}
}

func TestSampleMatchesSequentialSteps(t *testing.T) {
	sys := oscillator{}
	x0 := dynamo.State{1, 0}
	span := 0.5
	points := 10

	got := Sample(NewRK4(), sys, x0, nil, 0, span, points)

	stepper := NewRK4()
	want := x0.Clone()
	dt := span / float64(points)
	for i := 0; i < points; i++ {
		want = stepper.Step(sys, want, nil, float64(i)*dt, dt)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSampleConstantControl(t *testing.T) {
	out := Sample(NewRK4(), forced{}, dynamo.State{0}, dynamo.Control{2}, 0, 0.25, 10)
	if math.Abs(out[0]-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", out[0])
	}
}
