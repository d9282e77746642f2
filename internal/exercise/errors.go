package exercise

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is matched by every rejected state transition.
var ErrInvalidOperation = errors.New("invalid operation")

// OperationError reports a precondition violation. The state it was raised
// against is left unchanged.
type OperationError struct {
	Op     string
	Reason string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidOperation, e.Op, e.Reason)
}

func (e *OperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// Reject builds an OperationError.
func Reject(op, reason string) error {
	return &OperationError{Op: op, Reason: reason}
}
