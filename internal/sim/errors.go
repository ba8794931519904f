package sim

import "errors"

// Domain errors for workload runs.
var (
	// ErrCanceled indicates the run was interrupted by its context.
	ErrCanceled = errors.New("sim: run canceled by context")

	// ErrInvalidConfig indicates a non-positive step count or timestep.
	ErrInvalidConfig = errors.New("sim: steps and dt must be positive")
)

// RunError wraps an error with the step at which the run stopped.
type RunError struct {
	Step    int
	Wrapped error
}

func (e *RunError) Error() string {
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
