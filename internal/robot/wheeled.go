package robot

import (
	"gonum.org/v1/gonum/mat"

	"github.com/junyaoshi/snakesim/internal/dynamo"
	"github.com/junyaoshi/snakesim/internal/geom"
)

// storedPlaces is the decimal precision of stored wheeled-model angles.
// Discretization leaves irrational multiples of the grid interval; rounding
// keeps repeated moves from drifting within a grid cell.
const storedPlaces = 8

// Wheeled is the three-link wheeled variant. It carries no joint limits;
// after every move the heading and joint angles are discretized onto a fixed
// angular grid, rounded and wrapped before being stored.
type Wheeled struct {
	session
}

func NewWheeled(init Init, params Params, seed int64) *Wheeled {
	w := &Wheeled{session: newSession("wheeled", init, params, seed)}
	w.sys = w
	return w
}

// Derive maps the configuration and commanded joint velocities to the
// inertial-frame velocity [xdot, ydot, thetadot, a1dot, a2dot]. The lifted
// connection is scaled by 1/D(a1, a2), which is singular at a1 = a2.
func (w *Wheeled) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	theta, a1, a2 := x[2], x[3], x[4]

	da := mat.NewVecDense(2, []float64{u[0], u[1]})
	var body, world mat.VecDense
	body.MulVec(wheeledJacobian(w.params.LinkLength, a1, a2), da)
	world.MulVec(lift(theta), &body)

	dInv := wheeledDInverse(w.params.LinkLength, a1, a2)
	return dynamo.State{
		dInv * world.AtVec(0),
		dInv * world.AtVec(1),
		dInv * world.AtVec(2),
		u[0], u[1],
	}
}

func (w *Wheeled) StateDim() int   { return 5 }
func (w *Wheeled) ControlDim() int { return 2 }

// Labels names the entries of Snapshot, in order.
func (w *Wheeled) Labels() []string {
	return []string{"x", "y", "theta", "a1", "a2"}
}

// Snapshot returns the generalized configuration as an integration vector.
func (w *Wheeled) Snapshot() dynamo.State { return w.vector() }

func (w *Wheeled) vector() dynamo.State {
	return dynamo.State{
		w.state.Pose.X, w.state.Pose.Y, w.state.Pose.Theta,
		w.state.A1, w.state.A2,
	}
}

// Move advances the session by one control step of timestep * TInterval
// seconds and returns the updated joint angles. The wheeled model wraps its
// angles rather than clamping them, so the limit flag is accepted only for
// interface parity with the swimmer and has no effect.
func (w *Wheeled) Move(action Action, timestep int, _ bool) (a1, a2 float64, err error) {
	span := float64(timestep) * w.params.TInterval

	final, err := w.integrate(w.vector(), action, span)
	if err != nil {
		return w.state.A1, w.state.A2, err
	}

	w.state.Pose.X = final[0]
	w.state.Pose.Y = final[1]
	w.state.Pose.Theta = geom.Normalize(w.quantize(final[2]))
	w.state.A1 = geom.Normalize(w.quantize(final[3]))
	w.state.A2 = geom.Normalize(w.quantize(final[4]))

	w.state.A1Dot = action.A1Dot
	w.state.A2Dot = action.A2Dot
	w.state.Elapsed += span
	return w.state.A1, w.state.A2, nil
}

func (w *Wheeled) quantize(angle float64) float64 {
	return geom.Round(geom.Discretize(angle, w.params.AngleStep), storedPlaces)
}
