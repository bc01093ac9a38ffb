// Package experiment wires a configured robot, gait and metrics into a
// runnable simulation session.
package experiment

import (
	"context"
	"fmt"

	"github.com/junyaoshi/snakesim/internal/config"
	"github.com/junyaoshi/snakesim/internal/dynamo"
	"github.com/junyaoshi/snakesim/internal/gait"
	"github.com/junyaoshi/snakesim/internal/integrators"
	"github.com/junyaoshi/snakesim/internal/metrics"
	"github.com/junyaoshi/snakesim/internal/robot"
)

// Mover is the engine-facing surface a session drives, satisfied by both
// robot models.
type Mover interface {
	Move(action robot.Action, timestep int, enforceLimits bool) (a1, a2 float64, err error)
	RandomizeJointState(oppositeSigns bool) (a1, a2 float64)
	Snapshot() dynamo.State
	Labels() []string
	Elapsed() float64
}

// Build constructs the robot and gait a configuration describes.
func Build(cfg *config.Config) (Mover, gait.Generator, error) {
	params := cfg.RobotParams()
	init := cfg.RobotInit()

	var mover Mover
	switch cfg.Model {
	case "swimmer":
		mover = robot.NewSwimmer(init, params, cfg.Seed)
	case "wheeled":
		mover = robot.NewWheeled(init, params, cfg.Seed)
	default:
		return nil, nil, fmt.Errorf("%w: unknown model %q", dynamo.ErrBadConfig, cfg.Model)
	}

	stepper, err := buildStepper(cfg.Integrator)
	if err != nil {
		return nil, nil, err
	}
	switch m := mover.(type) {
	case *robot.Swimmer:
		m.SetStepper(stepper)
	case *robot.Wheeled:
		m.SetStepper(stepper)
	}

	var gen gait.Generator
	switch cfg.Gait {
	case "none":
		gen = gait.None{}
	case "square":
		gen = gait.NewSquare(cfg.GaitParams.Amplitude)
	case "phase":
		gen = gait.NewPhase(cfg.GaitParams.Amplitude, cfg.GaitParams.Frequency, cfg.GaitParams.Offset)
	default:
		return nil, nil, fmt.Errorf("%w: unknown gait %q", dynamo.ErrBadConfig, cfg.Gait)
	}

	return mover, gen, nil
}

func buildStepper(name string) (dynamo.Stepper, error) {
	switch name {
	case "euler":
		return integrators.NewEuler(), nil
	case "rk4", "":
		return integrators.NewRK4(), nil
	case "rk45":
		return integrators.NewRK45(), nil
	default:
		return nil, fmt.Errorf("%w: unknown integrator %q", dynamo.ErrBadConfig, name)
	}
}

// DefaultMetrics returns the standard per-run metrics for a model with the
// given snapshot layout.
func DefaultMetrics(labels []string) []dynamo.Metric {
	ix, iy := indexOf(labels, "x"), indexOf(labels, "y")
	return []dynamo.Metric{
		metrics.NewDisplacement(ix, iy),
		metrics.NewControlEffort(),
	}
}

func indexOf(labels []string, name string) int {
	for i, l := range labels {
		if l == name {
			return i
		}
	}
	return 0
}

// Session repeatedly applies a gait to a robot, one control step per
// iteration, recording the trajectory and feeding the metrics.
type Session struct {
	mover    Mover
	gen      gait.Generator
	metrics  []dynamo.Metric
	timestep int
	enforce  bool
}

func NewSession(m Mover, g gait.Generator, timestep int, enforceLimits bool) *Session {
	return &Session{
		mover:    m,
		gen:      g,
		metrics:  make([]dynamo.Metric, 0),
		timestep: timestep,
		enforce:  enforceLimits,
	}
}

func (s *Session) AddMetric(m dynamo.Metric) { s.metrics = append(s.metrics, m) }

// Run drives the robot for the given number of control steps. A failed move
// is recorded on the result and ends the episode; whether to continue with a
// fresh session is the caller's decision.
func (s *Session) Run(ctx context.Context, steps int) (*dynamo.Result, error) {
	result := &dynamo.Result{
		States:   make([]dynamo.State, 0, steps+1),
		Controls: make([]dynamo.Control, 0, steps),
		Times:    make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
		Errors:   make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.States = append(result.States, s.mover.Snapshot())
	result.Times = append(result.Times, s.mover.Elapsed())
	for _, m := range s.metrics {
		m.Observe(result.States[0], dynamo.Control{}, result.Times[0])
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		a := s.gen.Action(i)
		u := dynamo.Control{a.A1Dot, a.A2Dot}

		if _, _, err := s.mover.Move(a, s.timestep, s.enforce); err != nil {
			result.Errors = append(result.Errors, err)
			break
		}
		result.StepsTaken++

		x := s.mover.Snapshot()
		t := s.mover.Elapsed()
		for _, m := range s.metrics {
			m.Observe(x, u, t)
		}

		result.States = append(result.States, x)
		result.Controls = append(result.Controls, u)
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
