package handoff

import (
	"errors"
	"fmt"
)

// InfrastructureError represents a host-level failure, such as a screen that
// could not be constructed or pushed. The transition controller never wraps
// these; the host side creates them.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "push_editor", "load_config")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("handoff: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("handoff: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
