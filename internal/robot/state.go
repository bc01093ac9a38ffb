// Package robot implements the reduced-order kinematic models of a planar
// three-link articulated robot: a viscous swimmer whose moves respect joint
// limits, and a wheeled variant whose configuration space is discretized.
package robot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Action is a commanded pair of joint angular velocities.
type Action struct {
	A1Dot float64
	A2Dot float64
}

// Pose is the inertial-frame placement of the body frame.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// State is the full configuration of one simulation session, owned
// exclusively by the model that mutates it. Heading stays in (-pi, pi] and
// joint angles honor the model's limit or wrap policy after every move.
type State struct {
	BodyX   float64 // body-frame longitudinal displacement (swimmer only)
	Pose    Pose
	A1      float64
	A2      float64
	A1Dot   float64 // time-averaged velocity realized over the last move
	A2Dot   float64
	Elapsed float64
}

// Params are the per-session physical and integration constants.
type Params struct {
	LinkLength float64     // length of every link
	Viscosity  float64     // drag coefficient of the surrounding medium
	TInterval  float64     // duration of one nominal timestep
	Timestep   int         // timestep count of one control step
	Limits     r1.Interval // joint angle limits
	Samples    int         // internal samples per bounded integration
	AngleStep  float64     // configuration grid interval (wheeled model)
	SnapTol    float64     // snap-to-limit tolerance
	SplitTol   float64     // crossing-time coincidence tolerance
}

func DefaultParams() Params {
	return Params{
		LinkLength: 2,
		Viscosity:  1,
		TInterval:  0.25,
		Timestep:   1,
		Limits:     r1.Interval{Min: -math.Pi / 2, Max: math.Pi / 2},
		Samples:    10,
		AngleStep:  math.Pi / 32,
		SnapTol:    1e-9,
		SplitTol:   1e-7,
	}
}

// Init is the initial configuration of a session.
type Init struct {
	BodyX float64
	X     float64
	Y     float64
	Theta float64
	A1    float64
	A2    float64
}

func DefaultInit() Init {
	return Init{A1: -math.Pi / 4, A2: math.Pi / 4}
}
