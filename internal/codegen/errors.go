package codegen

import (
	"errors"
	"fmt"

	"vapor.dev/pkg/vapor/internal/ir"
)

// ErrUnsupportedOperation is returned when the dispatcher meets an
// operation it has no generator for.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// UnsupportedOperationError carries the offending operation.
type UnsupportedOperationError struct {
	Op ir.Operation
}

func (e *UnsupportedOperationError) Error() string {
	if e.Op == nil {
		return fmt.Sprintf("codegen: %v: <nil>", ErrUnsupportedOperation)
	}

	return fmt.Sprintf("codegen: %v: %q (%T)", ErrUnsupportedOperation, e.Op.Kind(), e.Op)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}
