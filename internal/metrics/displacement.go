// Package metrics implements per-step observers summarizing a simulation run.
package metrics

import "github.com/junyaoshi/snakesim/internal/dynamo"

// Displacement tracks the net inertial-frame distance between the first and
// last observed positions. The state indices of x and y depend on the model's
// snapshot layout.
type Displacement struct {
	name     string
	xIdx     int
	yIdx     int
	first    dynamo.State
	last     dynamo.State
	observed bool
}

func NewDisplacement(xIdx, yIdx int) *Displacement {
	return &Displacement{
		name: "displacement",
		xIdx: xIdx,
		yIdx: yIdx,
	}
}

func (d *Displacement) Name() string { return d.name }

func (d *Displacement) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if len(x) <= d.xIdx || len(x) <= d.yIdx {
		return
	}
	pos := dynamo.State{x[d.xIdx], x[d.yIdx]}
	if !d.observed {
		d.first = pos
		d.observed = true
	}
	d.last = pos
}

func (d *Displacement) Value() float64 {
	if !d.observed {
		return 0
	}
	return d.last.Sub(d.first).Norm()
}

func (d *Displacement) Reset() {
	d.first = nil
	d.last = nil
	d.observed = false
}
