package robot

import (
	"math/rand"

	"github.com/junyaoshi/snakesim/internal/dynamo"
	"github.com/junyaoshi/snakesim/internal/integrators"
	"gonum.org/v1/gonum/spatial/r1"
)

// session is the state, parameters and plumbing shared by both models. The
// embedding model registers itself as sys so integration runs through its own
// velocity field.
type session struct {
	params  Params
	state   State
	stepper dynamo.Stepper
	rng     *rand.Rand
	sys     dynamo.System
	model   string
}

func newSession(model string, init Init, params Params, seed int64) session {
	return session{
		params: params,
		state: State{
			BodyX: init.BodyX,
			Pose:  Pose{X: init.X, Y: init.Y, Theta: init.Theta},
			A1:    init.A1,
			A2:    init.A2,
		},
		stepper: integrators.NewRK4(),
		rng:     rand.New(rand.NewSource(seed)),
		model:   model,
	}
}

// SetStepper replaces the default RK4 stepper.
func (s *session) SetStepper(st dynamo.Stepper) { s.stepper = st }

// Position returns the inertial-frame displacement of the body frame.
func (s *session) Position() (x, y float64) { return s.state.Pose.X, s.state.Pose.Y }

// Heading returns the body-frame orientation, always in (-pi, pi].
func (s *session) Heading() float64 { return s.state.Pose.Theta }

// BodyX returns the body-frame longitudinal displacement channel.
func (s *session) BodyX() float64 { return s.state.BodyX }

// JointAngles returns the current joint configuration.
func (s *session) JointAngles() (a1, a2 float64) { return s.state.A1, s.state.A2 }

// JointVelocities returns the time-averaged joint velocities realized over
// the last move, which can fall below the commanded velocities when the move
// was cut short by a joint limit.
func (s *session) JointVelocities() (a1dot, a2dot float64) {
	return s.state.A1Dot, s.state.A2Dot
}

// Elapsed returns the total duration actually integrated so far.
func (s *session) Elapsed() float64 { return s.state.Elapsed }

// State returns a copy of the full session state.
func (s *session) State() State { return s.state }

// Params returns the session constants.
func (s *session) Params() Params { return s.params }

// SetJointAngles overwrites the joint configuration without validation.
func (s *session) SetJointAngles(a1, a2 float64) {
	s.state.A1, s.state.A2 = a1, a2
}

// RandomizeJointState draws each joint angle independently and uniformly from
// the configured limit range. With oppositeSigns set, the pair is resampled
// until the two angles carry strictly opposite signs; the constraint is only
// satisfiable when the range straddles zero, so it is skipped otherwise
// rather than resampling forever.
func (s *session) RandomizeJointState(oppositeSigns bool) (a1, a2 float64) {
	iv := s.params.Limits
	a1 = s.uniform(iv)
	a2 = s.uniform(iv)
	if oppositeSigns && iv.Min < 0 && iv.Max > 0 {
		for a1*a2 >= 0 {
			a1 = s.uniform(iv)
			a2 = s.uniform(iv)
		}
	}
	s.state.A1, s.state.A2 = a1, a2
	s.state.A1Dot, s.state.A2Dot = 0, 0
	return a1, a2
}

func (s *session) uniform(iv r1.Interval) float64 {
	return iv.Min + s.rng.Float64()*(iv.Max-iv.Min)
}

// integrate runs the model's velocity field over [0, span] through the
// configured number of internal samples and returns the final sample. The
// result is validated so a pass through a configuration singularity surfaces
// as an error instead of committing non-finite state.
func (s *session) integrate(from dynamo.State, action Action, span float64) (dynamo.State, error) {
	u := dynamo.Control{action.A1Dot, action.A2Dot}
	out := integrators.Sample(s.stepper, s.sys, from, u, 0, span, s.params.Samples)
	if !out.IsValid() {
		return nil, s.stepError(dynamo.ErrSingular)
	}
	return out, nil
}

func (s *session) stepError(err error) error {
	return &dynamo.StepError{Model: s.model, Time: s.state.Elapsed, Wrapped: err}
}
