package robot

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// lift returns the lifted left-action matrix TeLg(theta) mapping a body-frame
// velocity triple (vx, vy, omega) into the inertial frame.
func lift(theta float64) *mat.Dense {
	ct, st := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		ct, -st, 0,
		st, ct, 0,
		0, 0, 1,
	})
}

// swimJacobian returns the body-velocity Jacobian of the viscous swimmer,
// the closed-form resistive-force solution for three identical links of
// length L. It depends only on the joint angles. The shared denominators
// vanish at singular configurations; the blow-up is deliberately left to the
// caller's validity check.
func swimJacobian(L, a1, a2 float64) *mat.Dense {
	s, c := math.Sin, math.Cos
	p1 := 1 - c(2*a1)
	p2 := 1 - c(2*a2)

	n00 := 72*s(a1) + 5*s(2*a1) - 30*s(a2) - 7*s(2*a2) + 6*s(a1-2*a2) +
		36*s(a1-a2) + 12*s(a1+a2) + 2*s(a1+2*a2) + 2*s(2*a1+a2) + s(2*a1+2*a2)
	d00 := 3 * (-136*c(a1) - 14*c(2*a1) - 136*c(a2) - 14*c(2*a2) + 4*c(a1-2*a2) +
		8*c(a1-a2) - 56*c(a1+a2) - 12*c(a1+2*a2) + c(2*a1-2*a2) + 4*c(2*a1-a2) -
		12*c(2*a1+a2) - 3*c(2*a1+2*a2) - 282)

	n01 := -30*s(a1) - 7*s(2*a1) + 72*s(a2) + 5*s(2*a2) - 36*s(a1-a2) +
		12*s(a1+a2) + 2*s(a1+2*a2) - 6*s(2*a1-a2) + 2*s(2*a1+a2) + s(2*a1+2*a2)
	d01 := 408*c(a1) + 42*c(2*a1) + 408*c(a2) + 42*c(2*a2) - 12*c(a1-2*a2) -
		24*c(a1-a2) + 168*c(a1+a2) + 36*c(a1+2*a2) - 3*c(2*a1-2*a2) -
		12*c(2*a1-a2) + 36*c(2*a1+a2) + 9*c(2*a1+2*a2) + 846

	n10 := -32*p1*p1 - 56*p2*p2*c(a1) + 12*p2*p2*c(2*a1) - 52*p2*p2 +
		3596*c(a1) + 102*c(2*a1) - 236*c(3*a1) + 1312*c(a2) + 144*c(2*a2) -
		88*c(3*a2) + 6*c(4*a2) - 4*c(a1-4*a2) - 108*c(a1-3*a2) - 14*c(a1-2*a2) +
		1512*c(a1-a2) + 1512*c(a1+a2) - 150*c(a1+2*a2) - 108*c(a1+3*a2) +
		4*c(a1+4*a2) - 3*c(2*a1-4*a2) - 24*c(2*a1-2*a2) - 96*c(2*a1-a2) +
		40*c(2*a1+a2) - 24*c(2*a1+2*a2) - 8*c(2*a1+3*a2) - 3*c(2*a1+4*a2) -
		18*c(3*a1-2*a2) - 108*c(3*a1-a2) - 108*c(3*a1+a2) - 10*c(3*a1+2*a2) -
		8*c(4*a1+a2) + 666

	n11 := -56*p1*p1*c(a2) + 12*p1*p1*c(2*a2) - 52*p1*p1 - 32*p2*p2 +
		1312*c(a1) + 144*c(2*a1) - 88*c(3*a1) + 6*c(4*a1) + 3596*c(a2) +
		102*c(2*a2) - 236*c(3*a2) - 108*c(a1-3*a2) - 96*c(a1-2*a2) +
		1512*c(a1-a2) + 1512*c(a1+a2) + 40*c(a1+2*a2) - 108*c(a1+3*a2) -
		8*c(a1+4*a2) - 18*c(2*a1-3*a2) - 24*c(2*a1-2*a2) - 14*c(2*a1-a2) -
		150*c(2*a1+a2) - 24*c(2*a1+2*a2) - 10*c(2*a1+3*a2) - 108*c(3*a1-a2) -
		108*c(3*a1+a2) - 8*c(3*a1+2*a2) - 3*c(4*a1-2*a2) - 4*c(4*a1-a2) +
		4*c(4*a1+a2) - 3*c(4*a1+2*a2) + 666

	d1 := -8*p1*p1*p2*p2 + 64*p1*p1*c(a2) + 16*p1*p1*c(2*a2) + 112*p1*p1 +
		64*p2*p2*c(a1) + 16*p2*p2*c(2*a1) + 112*p2*p2 - 8224*c(a1) +
		1544*c(2*a1) + 544*c(3*a1) + 6*c(4*a1) - 8224*c(a2) + 1544*c(2*a2) +
		544*c(3*a2) + 6*c(4*a2) - 32*c(a1-4*a2) - 32*c(a1-3*a2) +
		912*c(a1-2*a2) + 960*c(a1-a2) - 3648*c(a1+a2) - 176*c(a1+2*a2) +
		224*c(a1+3*a2) + 32*c(a1+4*a2) - 12*c(2*a1-4*a2) - 16*c(2*a1-3*a2) +
		224*c(2*a1-2*a2) + 912*c(2*a1-a2) - 176*c(2*a1+a2) - 32*c(2*a1+2*a2) +
		48*c(2*a1+3*a2) + 4*c(2*a1+4*a2) - 16*c(3*a1-2*a2) - 32*c(3*a1-a2) +
		224*c(3*a1+a2) + 48*c(3*a1+2*a2) + c(4*a1-4*a2) - 12*c(4*a1-2*a2) -
		32*c(4*a1-a2) + 32*c(4*a1+a2) + 4*c(4*a1+2*a2) + c(4*a1+4*a2) - 18254

	// angular-velocity row shares these factors
	g := -7*c(a1) - 2*c(2*a1) + 7*c(a2) + 2*c(2*a2) + c(a1+2*a2) - c(2*a1+a2)
	h := c(2*a1) + c(2*a2) + c(2*a1+2*a2) - 39
	q := -28*c(a1) + c(2*a1) - 28*c(a2) + c(2*a2) + 4*c(a1-2*a2) + 8*c(a1-a2) -
		8*c(a1+a2) + c(2*a1-2*a2) + 4*c(2*a1-a2) - 63
	k := c(2*a1) + c(2*a2) - 8
	w := -2*(s(2*a1)-s(2*a2))*g + (4*s(a1)+s(2*a1)+4*s(a2)+s(2*a2))*h
	d2 := 3 * (-h*q + 4*g*g)

	n20 := -3*w*s(a1) - (3*c(a1)+4)*k*h + 6*k*g*c(a1)
	n21 := 3*w*s(a2) + (3*c(a2)+4)*k*h + 6*k*g*c(a2)

	return mat.NewDense(3, 2, []float64{
		4 * L * n00 / d00, 4 * L * n01 / d01,
		4 * L * n10 / (3 * d1), 4 * L * n11 / (3 * d1),
		2 * n20 / d2, 2 * n21 / d2,
	})
}

// wheeledJacobian returns the connection matrix A of the three-link wheeled
// model with link length R.
func wheeledJacobian(R, a1, a2 float64) *mat.Dense {
	s, c := math.Sin, math.Cos
	return mat.NewDense(3, 2, []float64{
		c(a1) + c(a1-a2), 1 + c(a1),
		0, 0,
		(2 / R) * (s(a1) + s(a1-a2)), (2 / R) * s(a1),
	})
}

// wheeledDInverse returns 1/D(a1, a2). D vanishes when a1 = a2; the
// resulting Inf propagates to the integration validity check.
func wheeledDInverse(R, a1, a2 float64) float64 {
	d := (2 / R) * (-math.Sin(a1) - math.Sin(a1-a2) + math.Sin(a2))
	return 1 / d
}
