// Package geom holds the small angle and interval arithmetic shared by the
// robot models: wrap-around normalization, grid discretization, fixed-place
// rounding and snap-to-bound.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r1"
)

// Normalize wraps angle into (-pi, pi].
func Normalize(angle float64) float64 {
	if angle > math.Pi {
		angle = math.Mod(angle, 2*math.Pi)
		if angle > math.Pi {
			angle -= 2 * math.Pi
		}
	} else if angle < -math.Pi {
		angle = math.Mod(angle, -2*math.Pi)
		if angle < -math.Pi {
			angle += 2 * math.Pi
		}
	}
	if angle == -math.Pi {
		angle = math.Pi
	}
	return angle
}

// Discretize rounds val to the nearest multiple of interval, breaking exact
// halves upward (toward the next bucket).
func Discretize(val, interval float64) float64 {
	quotient := val / interval
	floor := math.Floor(quotient)
	if quotient-floor >= 0.5 {
		floor++
	}
	return floor * interval
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Snap returns bound when v lies within tol of it, otherwise v unchanged.
// Repeated integration leaves joint angles a few ulps off their limits;
// snapping keeps the limit check exact.
func Snap(v, bound, tol float64) float64 {
	if math.Abs(v-bound) < tol {
		return bound
	}
	return v
}

// SnapToInterval snaps v to whichever end of iv it is within tol of.
func SnapToInterval(iv r1.Interval, v, tol float64) float64 {
	v = Snap(v, iv.Min, tol)
	v = Snap(v, iv.Max, tol)
	return v
}

// Contains reports whether v lies inside iv, ends included.
func Contains(iv r1.Interval, v float64) bool {
	return v >= iv.Min && v <= iv.Max
}
