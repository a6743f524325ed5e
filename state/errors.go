package state

import (
	"errors"
	"fmt"
)

// ErrInvalidStateTransition matches every *InvalidStateTransitionError.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// InvalidStateTransitionError reports an operation that is not defined for
// the current state.
type InvalidStateTransitionError struct {
	Operation string
	State     Kind
	Reason    string
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is not allowed in state %s", e.Operation, e.State)
	}
	return fmt.Sprintf("%s is not allowed in state %s: %s", e.Operation, e.State, e.Reason)
}

func (e *InvalidStateTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}

func notAllowed(op string, kind Kind) error {
	return &InvalidStateTransitionError{Operation: op, State: kind}
}

func invalid(op string, kind Kind, reason string) error {
	return &InvalidStateTransitionError{Operation: op, State: kind, Reason: reason}
}
