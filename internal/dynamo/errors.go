package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrJointLimit indicates a joint angle outside its configured limits at
	// the start of a limit-enforced step.
	ErrJointLimit = errors.New("snakesim: joint angle outside configured limits")

	// ErrSingular indicates integration passed through a configuration
	// singularity and produced a non-finite state.
	ErrSingular = errors.New("snakesim: singular configuration (non-finite state)")

	// ErrBadConfig indicates a session configuration that cannot be run.
	ErrBadConfig = errors.New("snakesim: invalid configuration")
)

// StepError wraps an error with the context of the move that produced it.
// The session state is left untouched when a StepError is returned.
type StepError struct {
	Model   string
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step at t=%.4f: %v", e.Model, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
