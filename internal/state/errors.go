package state

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition matches every *TransitionError.
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError reports an action that does not apply to the current state.
// It is informational: the state is left untouched.
type TransitionError struct {
	Op     string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
