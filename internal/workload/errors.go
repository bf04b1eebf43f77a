package workload

import "fmt"

// StepError wraps an op failure with its position in the workload.
type StepError struct {
	Step    int
	Op      Op
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
