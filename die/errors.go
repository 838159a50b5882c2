package die

import (
	"errors"
	"fmt"
)

// ErrInvalidHorizon is returned when the calculator is asked to score a
// horizon outside the fixed 7/14/30/60 set.
var ErrInvalidHorizon = errors.New("horizon must be one of 7, 14, 30, 60 days")

// InputError reports a structurally invalid numeric input to the pure
// calculator. It is the only hard failure mode inside the computation;
// missing history and missing profiles degrade instead of erroring.
type InputError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func newInputError(field, reason string) error {
	return &InputError{Field: field, Reason: reason}
}
