package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for operations that are not legal
// in the object's current lifecycle state.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError indicates that an operation was requested against an
// object whose current state does not permit it, such as an illegal status
// transition or a scan pass that has not been finished.
type InvalidStateError struct {
	Reason string
	Cause  error
}

// NewInvalidStateError creates an error describing why the operation
// is not legal in the current state.
func NewInvalidStateError(reason string) *InvalidStateError {
	return &InvalidStateError{Reason: reason}
}

// NewInvalidStateErrorWithCause creates an invalid-state error
// wrapping the underlying cause.
func NewInvalidStateErrorWithCause(reason string, cause error) *InvalidStateError {
	return &InvalidStateError{Reason: reason, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
