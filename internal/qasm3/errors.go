package qasm3

import (
	"errors"
	"fmt"

	"quasm/internal/circuit"
)

// ErrMalformed marks structurally invalid input: a missing condition target,
// a register-less bit where a register is required, and similar defects.
// Wrapped errors carry the detail.
var ErrMalformed = errors.New("malformed circuit")

// UnsupportedError reports an instruction the builder cannot lower. The
// export aborts before any output is produced.
type UnsupportedError struct {
	Op     *circuit.Operation
	Reason string
}

func (e *UnsupportedError) Error() string {
	if e.Op == nil {
		return "unsupported construct: " + e.Reason
	}
	return fmt.Sprintf("unsupported construct %q (%s): %s", e.Op.Name, e.Op.Kind, e.Reason)
}

func unsupported(op *circuit.Operation, reason string) error {
	return &UnsupportedError{Op: op, Reason: reason}
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
