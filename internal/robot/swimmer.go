package robot

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/junyaoshi/snakesim/internal/dynamo"
	"github.com/junyaoshi/snakesim/internal/geom"
)

// Swimmer is the viscous three-link swimmer. Commanded joint velocities map
// through the closed-form body-velocity Jacobian and are lifted into the
// inertial frame by the rotation action of the heading; moves respect the
// configured joint limits, splitting the integration when the two joints
// would reach their bounds at different times.
type Swimmer struct {
	session
}

func NewSwimmer(init Init, params Params, seed int64) *Swimmer {
	s := &Swimmer{session: newSession("swimmer", init, params, seed)}
	s.sys = s
	return s
}

// Derive maps (heading, joint angles, commanded joint velocities) to the
// generalized inertial-frame velocity [body_xdot, xdot, ydot, thetadot,
// a1dot, a2dot]. Pure in its inputs. Near a singularity of the Jacobian the
// result blows up; it is surfaced by the integration validity check, never
// corrected here.
func (s *Swimmer) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	theta, a1, a2 := x[3], x[4], x[5]

	da := mat.NewVecDense(2, []float64{u[0], u[1]})
	var body, world mat.VecDense
	body.MulVec(swimJacobian(s.params.LinkLength, a1, a2), da)
	world.MulVec(lift(theta), &body)

	return dynamo.State{body.AtVec(0), world.AtVec(0), world.AtVec(1), world.AtVec(2), u[0], u[1]}
}

func (s *Swimmer) StateDim() int   { return 6 }
func (s *Swimmer) ControlDim() int { return 2 }

// Labels names the entries of Snapshot, in order.
func (s *Swimmer) Labels() []string {
	return []string{"body_x", "x", "y", "theta", "a1", "a2"}
}

// Snapshot returns the generalized configuration as an integration vector.
func (s *Swimmer) Snapshot() dynamo.State { return s.vector() }

func (s *Swimmer) vector() dynamo.State {
	return dynamo.State{
		s.state.BodyX,
		s.state.Pose.X, s.state.Pose.Y, s.state.Pose.Theta,
		s.state.A1, s.state.A2,
	}
}

// Move advances the session by one control step of timestep * TInterval
// seconds and returns the updated joint angles.
//
// With enforceLimits set, the step fails with ErrJointLimit when a joint is
// already out of bounds, and is otherwise bounded by the analytic times at
// which each joint would reach its limit at the commanded constant rate.
// When those crossing times differ beyond tolerance the step splits into two
// integrations, the second holding the first-hitting joint at zero velocity.
// The realized joint velocities stored on the state are the time-weighted
// average of the phases, scaled down when the realized duration falls short
// of the nominal one. Without enforceLimits the full nominal duration is
// integrated and the joint angles wrap instead of clamping.
//
// Elapsed time advances by the duration actually integrated. On error the
// state is left untouched.
func (s *Swimmer) Move(action Action, timestep int, enforceLimits bool) (a1, a2 float64, err error) {
	nominal := float64(timestep) * s.params.TInterval

	if !enforceLimits {
		final, err := s.integrate(s.vector(), action, nominal)
		if err != nil {
			return s.state.A1, s.state.A2, err
		}
		a1dot, a2dot := realized(action, Action{}, nominal, 0, nominal)
		s.commit(final, nominal, a1dot, a2dot, false)
		return s.state.A1, s.state.A2, nil
	}

	if !geom.Contains(s.params.Limits, s.state.A1) || !geom.Contains(s.params.Limits, s.state.A2) {
		return s.state.A1, s.state.A2, s.stepError(dynamo.ErrJointLimit)
	}

	a1T := crossingTime(s.state.A1, action.A1Dot, s.params.Limits, nominal)
	a2T := crossingTime(s.state.A2, action.A2Dot, s.params.Limits, nominal)

	if math.Abs(a1T-a2T) <= s.params.SplitTol {
		// both joints stay in range for the same (possibly shortened) time
		final, err := s.integrate(s.vector(), action, a1T)
		if err != nil {
			return s.state.A1, s.state.A2, err
		}
		a1dot, a2dot := realized(action, Action{}, a1T, 0, nominal)
		s.commit(final, a1T, a1dot, a2dot, true)
		return s.state.A1, s.state.A2, nil
	}

	t1 := math.Min(a1T, a2T)
	t2 := math.Abs(a1T - a2T)

	var second Action
	if a1T < a2T {
		// a1 reaches its bound first and is held there
		second = Action{A2Dot: action.A2Dot}
	} else {
		second = Action{A1Dot: action.A1Dot}
	}

	mid, err := s.integrate(s.vector(), action, t1)
	if err != nil {
		return s.state.A1, s.state.A2, err
	}
	s.enforceVector(mid)
	final, err := s.integrate(mid, second, t2)
	if err != nil {
		return s.state.A1, s.state.A2, err
	}
	a1dot, a2dot := realized(action, second, t1, t2, nominal)
	s.commit(final, t1+t2, a1dot, a2dot, true)
	return s.state.A1, s.state.A2, nil
}

// commit applies one proposed update atomically: pose, wrapped heading,
// snapped joint angles, realized velocities and elapsed time.
func (s *Swimmer) commit(v dynamo.State, duration, a1dot, a2dot float64, enforceLimits bool) {
	s.state.BodyX = v[0]
	s.state.Pose.X = v[1]
	s.state.Pose.Y = v[2]
	s.state.Pose.Theta = geom.Normalize(v[3])

	a1, a2 := v[4], v[5]
	if !enforceLimits {
		a1 = geom.Normalize(a1)
		a2 = geom.Normalize(a2)
	}
	s.state.A1 = geom.SnapToInterval(s.params.Limits, a1, s.params.SnapTol)
	s.state.A2 = geom.SnapToInterval(s.params.Limits, a2, s.params.SnapTol)

	s.state.A1Dot = a1dot
	s.state.A2Dot = a2dot
	s.state.Elapsed += duration
}

// enforceVector applies the angle invariants to an integration sample before
// it seeds the second phase of a split step.
func (s *Swimmer) enforceVector(v dynamo.State) {
	v[3] = geom.Normalize(v[3])
	v[4] = geom.SnapToInterval(s.params.Limits, v[4], s.params.SnapTol)
	v[5] = geom.SnapToInterval(s.params.Limits, v[5], s.params.SnapTol)
}

// crossingTime returns the duration after which a joint at angle, moving at
// the commanded constant rate, first reaches the limit it is heading toward,
// capped at the nominal step duration. A zero rate never reaches a bound.
func crossingTime(angle, rate float64, limits r1.Interval, nominal float64) float64 {
	if rate == 0 {
		return nominal
	}
	var cross float64
	if rate > 0 {
		cross = (limits.Max - angle) / rate
	} else {
		cross = (limits.Min - angle) / rate
	}
	if cross > nominal {
		return nominal
	}
	return cross
}

// realized returns the time-weighted average of the joint velocities applied
// over the two phases of a move. When the realized duration t1+t2 falls short
// of the nominal control step the average is additionally scaled by their
// ratio, reporting the mean velocity over the requested interval.
func realized(first, second Action, t1, t2, nominal float64) (a1dot, a2dot float64) {
	if t1+t2 == 0 {
		return 0, 0
	}
	scale := 1.0
	if t1+t2 < nominal {
		scale = (t1 + t2) / nominal
	}
	c1 := t1 / (t1 + t2)
	c2 := t2 / (t1 + t2)
	a1dot = (c1*first.A1Dot + c2*second.A1Dot) * scale
	a2dot = (c1*first.A2Dot + c2*second.A2Dot) * scale
	return a1dot, a2dot
}
