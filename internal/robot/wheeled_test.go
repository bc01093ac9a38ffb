package robot

import (
	"errors"
	"math"
	"testing"

	"github.com/junyaoshi/snakesim/internal/dynamo"
)

func newTestWheeled(init Init) *Wheeled {
	return NewWheeled(init, DefaultParams(), 1)
}

// onGrid reports whether angle sits on a multiple of step, allowing for the
// decimal rounding applied to stored angles.
func onGrid(angle, step float64) bool {
	r := math.Abs(math.Mod(angle, step))
	return r < 1e-6 || step-r < 1e-6
}

func TestWheeledQuantizesOntoGrid(t *testing.T) {
	w := newTestWheeled(DefaultInit())
	step := w.Params().AngleStep

	for i := 0; i < 5; i++ {
		a1, a2, err := w.Move(Action{A1Dot: 0.31, A2Dot: -0.17}, 1, false)
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}

		if !onGrid(a1, step) {
			t.Errorf("step %d: a1 = %.10f off the %.6f grid", i, a1, step)
		}
		if !onGrid(a2, step) {
			t.Errorf("step %d: a2 = %.10f off the %.6f grid", i, a2, step)
		}
		if !onGrid(w.Heading(), step) {
			t.Errorf("step %d: theta = %.10f off the %.6f grid", i, w.Heading(), step)
		}
	}
}

func TestWheeledSingularConfiguration(t *testing.T) {
	w := newTestWheeled(Init{})
	before := w.State()

	_, _, err := w.Move(Action{A1Dot: 0.5, A2Dot: 0.5}, 1, false)
	if !errors.Is(err, dynamo.ErrSingular) {
		t.Fatalf("expected ErrSingular at a1 == a2, got %v", err)
	}

	if w.State() != before {
		t.Error("expected state unchanged after singular step")
	}
}

func TestWheeledWrapInvariant(t *testing.T) {
	init := DefaultInit()
	init.Theta = 5.0
	w := newTestWheeled(init)

	if _, _, err := w.Move(Action{A1Dot: 0.1, A2Dot: -0.1}, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := w.State()
	for name, angle := range map[string]float64{
		"theta": st.Pose.Theta, "a1": st.A1, "a2": st.A2,
	} {
		if angle <= -math.Pi || angle > math.Pi {
			t.Errorf("%s = %f outside (-pi, pi]", name, angle)
		}
	}
	if math.Abs(st.Pose.Theta-(5.0-2*math.Pi)) > 0.1 {
		t.Errorf("expected heading wrapped near %f, got %f", 5.0-2*math.Pi, st.Pose.Theta)
	}
}

func TestWheeledElapsed(t *testing.T) {
	w := newTestWheeled(DefaultInit())

	for i := 0; i < 4; i++ {
		if _, _, err := w.Move(Action{A1Dot: 0.2, A2Dot: -0.1}, 2, false); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}

	want := 4 * 2 * w.Params().TInterval
	if math.Abs(w.Elapsed()-want) > 1e-12 {
		t.Errorf("expected elapsed %f, got %f", want, w.Elapsed())
	}
}

func TestWheeledDeterminism(t *testing.T) {
	a := newTestWheeled(DefaultInit())
	b := newTestWheeled(DefaultInit())

	actions := []Action{
		{A1Dot: 0.4, A2Dot: -0.2},
		{A1Dot: -0.3, A2Dot: 0.5},
		{A1Dot: 0.1, A2Dot: 0.6},
	}

	for _, act := range actions {
		if _, _, err := a.Move(act, 1, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, _, err := b.Move(act, 1, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if a.State() != b.State() {
		t.Errorf("expected bit-identical states, got %+v vs %+v", a.State(), b.State())
	}
}

func TestWheeledVelocitiesAreCommanded(t *testing.T) {
	w := newTestWheeled(DefaultInit())

	act := Action{A1Dot: 0.25, A2Dot: -0.4}
	if _, _, err := w.Move(act, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a1dot, a2dot := w.JointVelocities()
	if a1dot != act.A1Dot || a2dot != act.A2Dot {
		t.Errorf("expected commanded velocities (%f, %f), got (%f, %f)",
			act.A1Dot, act.A2Dot, a1dot, a2dot)
	}
}
