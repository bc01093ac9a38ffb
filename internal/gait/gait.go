// Package gait provides open-loop joint-velocity generators that drive the
// robot models one control step at a time.
package gait

import (
	"math"

	"github.com/junyaoshi/snakesim/internal/robot"
)

// Generator produces the commanded action for control step i.
type Generator interface {
	Action(step int) robot.Action
}

// None commands zero joint velocities.
type None struct{}

func (None) Action(int) robot.Action { return robot.Action{} }

// Square drives the distal joint back and forth at a fixed rate, flipping
// direction every control step.
type Square struct {
	Amplitude float64
}

func NewSquare(amplitude float64) Square {
	return Square{Amplitude: amplitude}
}

func (g Square) Action(step int) robot.Action {
	if step%2 == 0 {
		return robot.Action{A2Dot: g.Amplitude}
	}
	return robot.Action{A2Dot: -g.Amplitude}
}

// Phase drives both joints sinusoidally with a fixed phase offset between
// them, the traveling-wave pattern that produces net locomotion.
type Phase struct {
	Amplitude float64
	Frequency float64 // radians of phase advanced per control step
	Offset    float64 // phase lag of the distal joint
}

func NewPhase(amplitude, frequency, offset float64) Phase {
	return Phase{Amplitude: amplitude, Frequency: frequency, Offset: offset}
}

func (g Phase) Action(step int) robot.Action {
	ph := g.Frequency * float64(step)
	return robot.Action{
		A1Dot: g.Amplitude * math.Cos(ph),
		A2Dot: g.Amplitude * math.Cos(ph+g.Offset),
	}
}
